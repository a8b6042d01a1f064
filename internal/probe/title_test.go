package probe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"webroulette/internal/probe"
)

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "uppercase tags across newlines", in: "<HTML><TITLE>\nHome\n</TITLE></html>", out: "Home"},
		{name: "plain", in: "<html><head><title>Camera Login</title></head></html>", out: "Camera Login"},
		{name: "mixed case", in: "<TiTlE>Mixed</tItLe>", out: "Mixed"},
		{name: "first match wins", in: "<title>one</title><title>two</title>", out: "one"},
		{name: "inner whitespace kept", in: "<title>  a \n b  </title>", out: "a \n b"},
		{name: "empty title", in: "<title></title>", out: ""},
		{name: "no title", in: "<html><body>hi</body></html>", out: probe.NoTitle},
		{name: "unclosed title", in: "<title>never closed", out: probe.NoTitle},
		{name: "attributes are not matched", in: `<title lang="en">x</title>`, out: probe.NoTitle},
		{name: "empty body", in: "", out: probe.NoTitle},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, probe.ExtractTitle([]byte(tc.in)))
		})
	}
}

func TestDefaultBoringTitles(t *testing.T) {
	s := probe.DefaultBoringTitles()

	require.True(t, s.Contains("Welcome to nginx!"))
	require.True(t, s.Contains(""))
	require.True(t, s.Contains("IIS7"))
	require.False(t, s.Contains(probe.NoTitle), "pages without a title are accepted by default")

	// each call hands out an independent set
	delete(s, "Welcome to nginx!")
	require.True(t, probe.DefaultBoringTitles().Contains("Welcome to nginx!"))
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, probe.DefaultOptions().Validate())

	o := probe.DefaultOptions()
	o.RequestTimeout = 0
	require.Error(t, o.Validate())

	o = probe.DefaultOptions()
	o.MaxBodyBytes = -1
	require.Error(t, o.Validate())
}
