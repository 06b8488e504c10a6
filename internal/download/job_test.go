package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/mvn-downloader/internal/model"
)

func TestJob_Success(t *testing.T) {
	srv := newRepo(t, map[string]string{"/lib.jar": jarBody})
	out := t.TempDir()

	var mu sync.Mutex
	var progress []int
	var success string
	var failure error

	job := newTestEngine().Start(context.Background(), Request{
		Targets:   model.TargetSet{model.NewTarget(srv.URL+"/lib.jar", "lib.jar")},
		OutputDir: out,
		VerifyTLS: true,
	}, Callbacks{
		OnProgress: func(p int) {
			mu.Lock()
			progress = append(progress, p)
			mu.Unlock()
		},
		OnSuccess: func(path string) { success = path },
		OnFailure: func(err error) { failure = err },
	})

	path, err := job.Wait()
	require.NoError(t, err)

	assert.Equal(t, path, success)
	assert.NoError(t, failure)
	assert.Equal(t, 100, job.Progress())
	mu.Lock()
	assert.True(t, isNonDecreasing(progress))
	mu.Unlock()
}

func TestJob_Cancel(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chunk := strings.Repeat("c", 8192)
		w.Header().Set("Content-Length", strconv.Itoa(len(chunk)*4))
		_, _ = w.Write([]byte(chunk))
		w.(http.Flusher).Flush()
		close(started)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)
	out := t.TempDir()

	var failure error
	job := newTestEngine().Start(context.Background(), Request{
		Targets:   model.TargetSet{model.NewTarget(srv.URL+"/big.jar", "big.jar")},
		OutputDir: out,
		VerifyTLS: true,
	}, Callbacks{
		OnFailure: func(err error) { failure = err },
	})

	<-started
	job.Cancel()
	// The handler is blocked mid-body; unblock it so the next read returns
	// and the flag is observed at the following chunk boundary.
	release <- struct{}{}

	select {
	case <-job.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("job did not finish after cancel")
	}

	_, err := job.Wait()
	assert.True(t, IsCancelled(err), "err = %v", err)
	assert.True(t, IsCancelled(failure))
	assert.Empty(t, scratchDirs(t, out))
}
