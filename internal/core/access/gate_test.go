package access_test

import (
	"clipshare/internal/core/access"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		path          string
		want          access.Decision
	}{
		{name: "signed in on sign-in goes home", authenticated: true, path: "/sign-in", want: access.Decision{Kind: access.Redirect, Location: "/home"}},
		{name: "signed in on sign-up goes home", authenticated: true, path: "/sign-up", want: access.Decision{Kind: access.Redirect, Location: "/home"}},
		{name: "signed in on root goes home", authenticated: true, path: "/", want: access.Decision{Kind: access.Redirect, Location: "/home"}},
		{name: "signed in on home stays", authenticated: true, path: "/home", want: access.Decision{Kind: access.Allow}},
		{name: "signed in on upload page", authenticated: true, path: "/video-upload", want: access.Decision{Kind: access.Allow}},
		{name: "signed in on public api", authenticated: true, path: "/api/video", want: access.Decision{Kind: access.Allow}},
		{name: "signed out on upload page", authenticated: false, path: "/video-upload", want: access.Decision{Kind: access.Redirect, Location: "/sign-in"}},
		{name: "signed out on private api", authenticated: false, path: "/api/video-upload", want: access.Decision{Kind: access.Redirect, Location: "/sign-in"}},
		{name: "signed out on public api", authenticated: false, path: "/api/video", want: access.Decision{Kind: access.Allow}},
		{name: "signed out on home", authenticated: false, path: "/home", want: access.Decision{Kind: access.Allow}},
		{name: "signed out on sign-in", authenticated: false, path: "/sign-in", want: access.Decision{Kind: access.Allow}},
		{name: "trailing slash is normalized", authenticated: true, path: "/sign-in/", want: access.Decision{Kind: access.Redirect, Location: "/home"}},
		{name: "static asset is not gated", authenticated: false, path: "/assets/app.js", want: access.Decision{Kind: access.Allow}},
		{name: "signed out on upload page file", authenticated: false, path: "/video-upload.html", want: access.Decision{Kind: access.Redirect, Location: "/sign-in"}},
		{name: "signed out on nested index file", authenticated: false, path: "/social-share/index.html", want: access.Decision{Kind: access.Redirect, Location: "/sign-in"}},
		{name: "signed out climbing out of a public page", authenticated: false, path: "/home/../video-upload", want: access.Decision{Kind: access.Redirect, Location: "/sign-in"}},
		{name: "signed out on dotted private api", authenticated: false, path: "/api/video-upload.json", want: access.Decision{Kind: access.Redirect, Location: "/sign-in"}},
		{name: "signed out on root index file", authenticated: false, path: "/index.html", want: access.Decision{Kind: access.Allow}},
		{name: "signed in on sign-in file goes home", authenticated: true, path: "/sign-in.html", want: access.Decision{Kind: access.Redirect, Location: "/home"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got := access.Decide(tt.authenticated, tt.path)

			// Assert
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAPI(t *testing.T) {
	assert.True(t, access.IsAPI("/api/video"))
	assert.True(t, access.IsAPI("/api/image-upload/"))
	assert.False(t, access.IsAPI("/apiary"))
	assert.False(t, access.IsAPI("/video-upload"))
}

func TestIsStatic(t *testing.T) {
	assert.True(t, access.IsStatic("/assets/app.js"))
	assert.True(t, access.IsStatic("/favicon.ICO"))
	assert.False(t, access.IsStatic("/video-upload.html"))
	assert.False(t, access.IsStatic("/api/video.png"))
	assert.False(t, access.IsStatic("/release.v2"))
}
