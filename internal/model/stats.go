package model

// Stats summarizes a data set.
type Stats struct {
	Channels           int     `json:"channels" yaml:"channels"`
	ChannelsWithTracks int     `json:"channels_with_tracks" yaml:"channels_with_tracks"`
	Tracks             int     `json:"tracks" yaml:"tracks"`
	TracksPerChannel   float64 `json:"tracks_per_channel" yaml:"tracks_per_channel"`
}

// ComputeStats counts channels and tracks. TracksPerChannel is zero when
// there are no channels.
func ComputeStats(channels []Channel, tracks []Track) Stats {
	s := Stats{
		Channels: len(channels),
		Tracks:   len(tracks),
	}
	for _, c := range channels {
		if c.TrackCount > 0 {
			s.ChannelsWithTracks++
		}
	}
	if s.Channels > 0 {
		s.TracksPerChannel = float64(s.Tracks) / float64(s.Channels)
	}
	return s
}
