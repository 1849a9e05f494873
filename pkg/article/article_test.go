package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRuby(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple Ruby",
			input:    "<ruby>漢字<rt>かんじ</rt></ruby>",
			expected: "<ruby>漢字</ruby>",
		},
		{
			name:     "Ruby with RP",
			input:    "<ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>",
			expected: "<ruby>漢字</ruby>",
		},
		{
			name:     "Multiple Ruby",
			input:    "<ruby>日本<rt>にほん</rt></ruby>の<ruby>首都<rt>しゅと</rt></ruby>",
			expected: "<ruby>日本</ruby>の<ruby>首都</ruby>",
		},
		{
			name:     "Attributes",
			input:    `<ruby>漢字<rt class="furigana">かんじ</rt></ruby>`,
			expected: "<ruby>漢字</ruby>",
		},
		{
			name:     "Uppercase and multiline",
			input:    "<RUBY>漢字<RT>\nかんじ\n</RT></RUBY>",
			expected: "<RUBY>漢字</RUBY>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(SanitizeRuby([]byte(tt.input)))
			if got != tt.expected {
				t.Errorf("SanitizeRuby() = %v, want %v", got, tt.expected)
			}
		})
	}
}

const page = `<!DOCTYPE html>
<html><head><title>猫の記事</title></head>
<body>
<nav><a href="/">home</a></nav>
<article>
<h1>猫の記事</h1>
<p><ruby>猫<rt>ねこ</rt></ruby>が走った。猫はとても速く走ることができます。この記事では猫の生活について詳しく説明します。</p>
<p>The quick fox jumped over the lazy dog while the cat watched from the window and waited patiently for dinner.</p>
<p>猫は毎日たくさん寝ます。時々、猫は夜中に家の中を走り回ることがあります。</p>
</article>
</body></html>`

func fastFetcher(srv *httptest.Server) *Fetcher {
	return &Fetcher{Client: srv.Client(), Attempts: 3, Delay: time.Millisecond}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	a, err := fastFetcher(srv).Fetch(context.Background(), srv.URL+"/news/1")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/news/1", a.URL)
	assert.Contains(t, a.Title, "猫の記事")
	assert.Contains(t, a.Text, "猫が走った。")
	assert.NotContains(t, a.Text, "ねこ", "furigana is stripped before extraction")
	assert.Contains(t, a.Text, "quick fox")
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(page))
	}))
	defer srv.Close()

	_, err := fastFetcher(srv).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetch_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := fastFetcher(srv).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetch_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", MaxBodySize+10)))
	}))
	defer srv.Close()

	_, err := fastFetcher(srv).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), errTooLarge.Error())
}

func TestFetch_BadURL(t *testing.T) {
	f := NewFetcher()
	_, err := f.Fetch(context.Background(), "ftp://example.com/file")
	require.Error(t, err)
	_, err = f.Fetch(context.Background(), "://nope")
	require.Error(t, err)
}
