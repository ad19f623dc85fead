package replaygain

import (
	"maps"
	"slices"
	"strings"
)

// Standard ReplayGain tag keys (Vorbis comment / APEv2 / ID3 TXXX descriptions).
const (
	KeyTrackGain = "REPLAYGAIN_TRACK_GAIN"
	KeyTrackPeak = "REPLAYGAIN_TRACK_PEAK"
	KeyAlbumGain = "REPLAYGAIN_ALBUM_GAIN"
	KeyAlbumPeak = "REPLAYGAIN_ALBUM_PEAK"
)

// Tags holds the track and album ReplayGain values of a file.
type Tags struct {
	Track ReplayGain
	Album ReplayGain
}

// ParseTags extracts ReplayGain values from raw tags. Keys are matched case-insensitively and
// unrelated keys are ignored. The second return value lists, in sorted order, the ReplayGain keys
// whose value was rejected; those fields keep their undefined value.
func ParseTags(raw map[string]string) (Tags, []string) {
	return defaultCodec.ParseTags(raw)
}

// ParseTags extracts ReplayGain values from raw tags.
func (c *Codec) ParseTags(raw map[string]string) (Tags, []string) {
	tags := Tags{
		Track: Undefined(),
		Album: Undefined(),
	}

	var rejected []string

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		var (
			target *float64
			parse  func(string) (float64, bool)
		)

		switch strings.ToUpper(key) {
		case KeyTrackGain:
			target, parse = &tags.Track.Ratio, c.ParseGain2Ratio
		case KeyTrackPeak:
			target, parse = &tags.Track.Peak, c.ParsePeak
		case KeyAlbumGain:
			target, parse = &tags.Album.Ratio, c.ParseGain2Ratio
		case KeyAlbumPeak:
			target, parse = &tags.Album.Peak, c.ParsePeak
		default:
			continue
		}

		value, ok := parse(raw[key])
		if !ok {
			rejected = append(rejected, key)

			continue
		}

		*target = value
	}

	return tags, rejected
}

// Normalize returns a copy with all values normalized.
func (t Tags) Normalize() Tags {
	return Tags{
		Track: t.Track.Normalize(),
		Album: t.Album.Normalize(),
	}
}

// Map formats the tags back to their standard keys. Undefined values are left out.
func (t Tags) Map() map[string]string {
	out := make(map[string]string, 4)

	put := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}

	put(KeyTrackGain, FormatRatio2Gain(t.Track.Ratio))
	put(KeyTrackPeak, FormatPeak(t.Track.Peak))
	put(KeyAlbumGain, FormatRatio2Gain(t.Album.Ratio))
	put(KeyAlbumPeak, FormatPeak(t.Album.Peak))

	return out
}
