package task

import (
	"testing"
	"time"
)

const testBase = "http://localhost:8000"

func TestResolveImageSrc(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			"image path proxied",
			Task{ImagePath: "img/eggs.png"},
			testBase + "/media/file?path=img%2Feggs.png",
		},
		{
			"image path with reserved characters",
			Task{ImagePath: "my dir/a&b.png"},
			testBase + "/media/file?path=my+dir%2Fa%26b.png",
		},
		{
			"image path wins over image url",
			Task{ImagePath: "img/a.png", ImageURL: "https://cdn.example.com/a.png"},
			testBase + "/media/file?path=img%2Fa.png",
		},
		{
			"signed http url verbatim",
			Task{ImageURL: "http://bucket.example.com/a.png?sig=abc"},
			"http://bucket.example.com/a.png?sig=abc",
		},
		{
			"signed https url verbatim",
			Task{ImageURL: "https://bucket.example.com/a.png"},
			"https://bucket.example.com/a.png",
		},
		{
			"bare image url treated as key",
			Task{ImageURL: "img/eggs.png"},
			testBase + "/media/file?path=img%2Feggs.png",
		},
		{
			"no image",
			Task{Text: "plain"},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveImageSrc(testBase, tt.task)
			if got != tt.want {
				t.Errorf("ResolveImageSrc() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveImageSrcTrimsBaseSlash(t *testing.T) {
	got := ResolveImageSrc(testBase+"/", Task{ImagePath: "a.png"})
	want := testBase + "/media/file?path=a.png"
	if got != want {
		t.Errorf("ResolveImageSrc() = %q, want %q", got, want)
	}
}

func TestFallbackID(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := FallbackID(now); got != now.UnixMilli() {
		t.Errorf("FallbackID() = %d, want %d", got, now.UnixMilli())
	}

	later := now.Add(time.Millisecond)
	if FallbackID(later) == FallbackID(now) {
		t.Error("FallbackID should differ across distinct milliseconds")
	}
}
