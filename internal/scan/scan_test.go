package scan

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autobrr/go-mediascan/internal/mediainfo"
)

type fakeOpener struct {
	mu     sync.Mutex
	docs   map[string]string
	opened []string
	closed int
}

type trackingCloser struct {
	io.Reader
	opener *fakeOpener
}

func (c trackingCloser) Close() error {
	c.opener.mu.Lock()
	defer c.opener.mu.Unlock()
	c.opener.closed++
	return nil
}

func (f *fakeOpener) Open(_ context.Context, arg string) (io.ReadCloser, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[arg]
	if !ok {
		return nil, arg, errors.New("no such file")
	}
	f.opened = append(f.opened, arg)
	return trackingCloser{Reader: strings.NewReader(doc), opener: f}, arg + ".xml", nil
}

const videoDoc = `<Mediainfo>
<File><track type="General"><Complete_name>a.mkv</Complete_name></track><track type="Video"><Width>640 pixels</Width></track></File>
<File><track type="General"><Complete_name>b.flac</Complete_name></track><track type="Audio"/></File>
</Mediainfo>`

const songDoc = `<Mediainfo>
<File><track type="General"><Complete_name>c.mp3</Complete_name></track><track type="Audio"/></File>
</Mediainfo>`

func names(infos []*mediainfo.MediaInfo) []string {
	out := make([]string, 0, len(infos))
	for _, info := range infos {
		out = append(out, info.Name())
	}
	sort.Strings(out)
	return out
}

func TestScanPartitionsRecords(t *testing.T) {
	opener := &fakeOpener{docs: map[string]string{"movies": videoDoc, "music": songDoc}}

	inv, err := New(opener, 2, nil).Scan(context.Background(), []string{"movies", "music"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.mkv"}, names(inv.Videos))
	assert.Equal(t, []string{"b.flac", "c.mp3"}, names(inv.Songs))
	assert.Equal(t, 3, inv.Len())
	assert.Equal(t, 2, opener.closed)
}

func TestScanKeepsDocumentOrderWithinArgument(t *testing.T) {
	opener := &fakeOpener{docs: map[string]string{"music": `<Mediainfo>
<File><track type="General"><Track_name>one</Track_name></track></File>
<File><track type="General"><Track_name>two</Track_name></track></File>
<File><track type="General"><Track_name>three</Track_name></track></File>
</Mediainfo>`}}

	inv, err := New(opener, 1, nil).Scan(context.Background(), []string{"music"})
	require.NoError(t, err)
	require.Len(t, inv.Songs, 3)
	assert.Equal(t, "one", inv.Songs[0].Name())
	assert.Equal(t, "two", inv.Songs[1].Name())
	assert.Equal(t, "three", inv.Songs[2].Name())
}

func TestScanOpenError(t *testing.T) {
	opener := &fakeOpener{docs: map[string]string{}}

	_, err := New(opener, 0, nil).Scan(context.Background(), []string{"missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestScanMalformedDocument(t *testing.T) {
	opener := &fakeOpener{docs: map[string]string{"bad": `<Mediainfo><File>`}}

	_, err := New(opener, 1, nil).Scan(context.Background(), []string{"bad"})
	assert.ErrorIs(t, err, mediainfo.ErrMalformedDocument)
	assert.Equal(t, 1, opener.closed)
}

func TestScanNoArguments(t *testing.T) {
	inv, err := New(&fakeOpener{}, 1, nil).Scan(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inv.Len())
}
