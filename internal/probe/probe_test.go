package probe

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<Mediainfo version="0.7.64"><File><track type="General"><Format>FLAC</Format></track></File></Mediainfo>
`

func fakeMediainfo(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in for mediainfo")
	}
	path := filepath.Join(t.TempDir(), "mediainfo")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestIsReport(t *testing.T) {
	assert.True(t, IsReport("scan.xml"))
	assert.True(t, IsReport("/tmp/SCAN.XML"))
	assert.False(t, IsReport("movie.mkv"))
	assert.False(t, IsReport("music"))
}

func TestOpenReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleXML), 0o644))

	rc, source, err := New("does-not-exist", "", 0, nil).Open(context.Background(), path)
	require.NoError(t, err)
	defer rc.Close()

	assert.Equal(t, path, source)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleXML, string(data))
}

func TestOpenRunsMediainfo(t *testing.T) {
	bin := fakeMediainfo(t, "printf '%s\\n' \"$1\" \"$2\"\n")

	rc, source, err := New(bin, "OLDXML", 0, nil).Open(context.Background(), "music")
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	assert.Equal(t, "--Output=OLDXML\nmusic\n", string(data))
	assert.Equal(t, "mediainfo(music)", source)
}

func TestCloseReportsFailure(t *testing.T) {
	bin := fakeMediainfo(t, "echo 'cannot open file' >&2\nexit 3\n")

	rc, _, err := New(bin, "", 0, nil).Open(context.Background(), "missing.mkv")
	require.NoError(t, err)

	err = rc.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open file")
	assert.Contains(t, err.Error(), "missing.mkv")
	assert.NoError(t, rc.Close())
}

func TestCloseDrainsUnreadOutput(t *testing.T) {
	bin := fakeMediainfo(t, "i=0\nwhile [ $i -lt 2000 ]; do echo '<padding/>'; i=$((i+1)); done\n")

	rc, _, err := New(bin, "", 0, nil).Open(context.Background(), "big.mkv")
	require.NoError(t, err)
	assert.NoError(t, rc.Close())
}

func TestTimeoutKillsMediainfo(t *testing.T) {
	bin := fakeMediainfo(t, "exec sleep 5\n")

	rc, _, err := New(bin, "", 50*time.Millisecond, nil).Open(context.Background(), "slow.mkv")
	require.NoError(t, err)
	assert.Error(t, rc.Close())
}

func TestOpenMissingBinary(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "nope"), "", 0, nil).Open(context.Background(), "movie.mkv")
	assert.Error(t, err)
}
