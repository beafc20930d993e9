package utils

import (
	"reflect"
	"testing"
)

func TestSplitURIComponents(t *testing.T) {
	tests := []struct {
		uri     string
		want    []string
		wantErr bool
	}{
		{uri: "/cou/hello/world", want: []string{"cou", "hello", "world"}},
		{uri: "/cou/hello/world/", want: []string{"cou", "hello", "world"}},
		{uri: "/cou/hello/world/a", want: []string{"cou", "hello", "world", "a"}},
		{uri: "/", want: []string{}},
		{uri: "/hello", want: []string{"hello"}},
		{uri: "/hello/", want: []string{"hello"}},
		{uri: "", wantErr: true},
		{uri: "a", wantErr: true},
	}

	for _, tt := range tests {
		got, err := SplitURIComponents(tt.uri)
		if tt.wantErr {
			if err == nil {
				t.Errorf("SplitURIComponents(%q) succeeded, want error", tt.uri)
			}
			continue
		}
		if err != nil {
			t.Errorf("SplitURIComponents(%q): %v", tt.uri, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitURIComponents(%q) = %v, want %v", tt.uri, got, tt.want)
		}
	}
}

func TestFlattenURI(t *testing.T) {
	if got := FlattenURI([]string{"a", "b"}); got != "/a/b" {
		t.Errorf("FlattenURI = %q", got)
	}
	if got := FlattenURI(nil); got != "/" {
		t.Errorf("FlattenURI(nil) = %q", got)
	}
}

func TestIsChildURI(t *testing.T) {
	split := func(uri string) []string {
		c, err := SplitURIComponents(uri)
		if err != nil {
			t.Fatalf("split %q: %v", uri, err)
		}
		return c
	}

	root := split("/")
	hello := split("/hello")
	helloWorld := split("/hello/world")
	world := split("/world")

	tests := []struct {
		base, uri []string
		want      bool
	}{
		{helloWorld, helloWorld, true},
		{hello, helloWorld, true},
		{root, helloWorld, true},
		{root, root, true},
		{helloWorld, hello, false},
		{world, helloWorld, false},
		{hello, world, false},
	}

	for _, tt := range tests {
		if got := IsChildURI(tt.base, tt.uri); got != tt.want {
			t.Errorf("IsChildURI(%v, %v) = %v, want %v", tt.base, tt.uri, got, tt.want)
		}
	}
}

func TestDetectMimeType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "../NOTES", want: ""},
		{name: "", want: ""},
		{name: "/", want: ""},
		{name: "a/a", want: ""},
		{name: "../NOTES.txt", want: "text/plain"},
		{name: "../coucou.xml/NOTES.txt", want: "text/plain"},
		{name: "../.xml", want: "text/xml"},
		{name: "NOTES.js", want: "application/javascript"},
		{name: "NOTES.json", want: "application/json"},
		{name: "NOTES.pdf", want: "application/pdf"},
		{name: "NOTES.css", want: "text/css"},
		{name: "NOTES.html", want: "text/html"},
		{name: "NOTES.xml", want: "text/xml"},
		{name: "NOTES.gif", want: "image/gif"},
		{name: "NOTES.jpg", want: "image/jpeg"},
		{name: "NOTES.jpeg", want: "image/jpeg"},
		{name: "NOTES.png", want: "image/png"},
		{name: "NOTES.PNG", want: "image/png"},
	}

	for _, tt := range tests {
		if got := DetectMimeType(tt.name); got != tt.want {
			t.Errorf("DetectMimeType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsUUID(t *testing.T) {
	if IsUUID("") {
		t.Error("empty string accepted")
	}
	if IsUUID("012345678901234567890123456789012345") {
		t.Error("non-UUID of the right length accepted")
	}
	if !IsUUID("550e8400-e29b-41d4-a716-446655440000") {
		t.Error("canonical UUID rejected")
	}
}
