package mediainfo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autobrr/go-mediascan/pkg/mediainfo"
)

func TestProxyAPI(t *testing.T) {
	// Smoke test to ensure the proxy can be imported and types are consistent
	var _ mediainfo.TrackKind = mediainfo.TrackGeneral

	reader := mediainfo.NewReader(strings.NewReader(`<Mediainfo><File><track type="General"><Format>AVI</Format></track></File></Mediainfo>`), "proxy")
	info, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, "AVI", info.Format())
}
