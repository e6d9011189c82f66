package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const indexBody = "<!doctype html><h1>Otomono Jerseys</h1>"

func setupProject(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(indexBody), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "order-manager.js"), []byte("export {}"), 0o644))
	return dir
}

func assertCORS(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", h.Get("Access-Control-Allow-Headers"))
}

func TestServer_Handler(t *testing.T) {
	dir := setupProject(t)
	srv := New(Config{Root: dir, Browse: true}, zap.NewNop())
	app := srv.App()

	t.Run("GET index.html", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/index.html", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assertCORS(t, resp.Header)
		assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, indexBody, string(body))
	})

	t.Run("GET root serves index", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, indexBody, string(body))
	})

	t.Run("GET nested file", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/js/order-manager.js", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assertCORS(t, resp.Header)
	})

	t.Run("Directory listing", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/js/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "order-manager.js")
	})

	t.Run("OPTIONS any path", func(t *testing.T) {
		for _, path := range []string{"/index.html", "/api/orders", "/"} {
			resp, err := app.Test(httptest.NewRequest("OPTIONS", path, nil))
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode, path)
			assertCORS(t, resp.Header)

			body, _ := io.ReadAll(resp.Body)
			assert.Empty(t, body, path)
		}
	})

	t.Run("Edited file served in full", func(t *testing.T) {
		path := filepath.Join(dir, "app.js")
		require.NoError(t, os.WriteFile(path, []byte("console.log(1)"), 0o644))

		resp, err := app.Test(httptest.NewRequest("GET", "/app.js", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "console.log(1)", string(body))

		edited := `console.log("a much longer edited line")`
		require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

		resp, err = app.Test(httptest.NewRequest("GET", "/app.js", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		body, _ = io.ReadAll(resp.Body)
		assert.Equal(t, edited, string(body))
	})

	t.Run("Not found carries CORS", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/missing.html", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assertCORS(t, resp.Header)
	})
}

func TestListen(t *testing.T) {
	t.Run("Invalid port", func(t *testing.T) {
		ln, err := Listen(Config{Host: "127.0.0.1", Port: 0})
		assert.ErrorIs(t, err, ErrInvalidPort)
		assert.Nil(t, ln)
	})

	t.Run("Port in use", func(t *testing.T) {
		occupied, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer occupied.Close()

		port := occupied.Addr().(*net.TCPAddr).Port
		ln, err := Listen(Config{Host: "127.0.0.1", Port: port})
		assert.ErrorIs(t, err, ErrPortInUse)
		assert.Nil(t, ln)
		assert.Contains(t, err.Error(), "already in use")
	})

	t.Run("Free port", func(t *testing.T) {
		probe, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		port := probe.Addr().(*net.TCPAddr).Port
		require.NoError(t, probe.Close())

		ln, err := Listen(Config{Host: "127.0.0.1", Port: port})
		require.NoError(t, err)
		assert.NoError(t, ln.Close())
	})
}

func TestServer_Serve(t *testing.T) {
	dir := setupProject(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()

	srv := New(Config{Root: dir, ShutdownTimeoutSeconds: 2}, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, ln)
	}()

	client := &http.Client{
		Timeout:   2 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = client.Get("http://" + addr + "/index.html")
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, indexBody, string(body))
	assertCORS(t, resp.Header)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	_, err = net.DialTimeout("tcp", addr, time.Second)
	assert.Error(t, err, "listener should be closed after shutdown")
}
