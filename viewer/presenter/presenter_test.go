package presenter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imtaco/live-viewer/viewer"
	"github.com/imtaco/live-viewer/viewer/presenter"
)

func TestSelectTarget(t *testing.T) {
	tests := []struct {
		name   string
		peers  []viewer.Peer
		wantID string
	}{
		{"no peers", nil, ""},
		{"only local", []viewer.Peer{{ID: "me", IsLocal: true, VideoTrack: "v"}}, ""},
		{
			"first remote with video",
			[]viewer.Peer{
				{ID: "me", IsLocal: true, VideoTrack: "v0"},
				{ID: "guest", RoleName: "guest"},
				{ID: "a", VideoTrack: "v1"},
				{ID: "b", VideoTrack: "v2"},
			},
			"a",
		},
		{
			"video beats host",
			[]viewer.Peer{{ID: "host", RoleName: "host"}, {ID: "cam", VideoTrack: "v1"}},
			"cam",
		},
		{
			"host without video",
			[]viewer.Peer{{ID: "guest", RoleName: "guest"}, {ID: "host", RoleName: "Host"}},
			"host",
		},
		{
			"local host ignored",
			[]viewer.Peer{{ID: "me", IsLocal: true, RoleName: "host"}},
			"",
		},
		{
			"unknown roles",
			[]viewer.Peer{{ID: "x", RoleName: "moderator"}, {ID: "y"}},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := presenter.SelectTarget(tt.peers)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSelectTargetReturnsCopy(t *testing.T) {
	peers := []viewer.Peer{{ID: "a", VideoTrack: "v1"}}
	got := presenter.SelectTarget(peers)
	require.NotNil(t, got)

	got.Name = "changed"
	assert.Empty(t, peers[0].Name)
}

func TestLayerLabel(t *testing.T) {
	tests := []struct {
		layer viewer.Layer
		want  string
	}{
		{viewer.Layer{Resolution: "1280x720", Width: 1280, Height: 720, Bitrate: 2800000}, "1280x720 · 2800 kbps"},
		{viewer.Layer{Width: 640, Height: 360, Bitrate: 799600}, "640x360 · 800 kbps"},
		{viewer.Layer{Height: 360, Bitrate: 400000}, "?x360 · 400 kbps"},
		{viewer.Layer{}, "?x? · 0 kbps"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, presenter.LayerLabel(tt.layer))
	}
}
