package mediatype

import "testing"

func TestParse(t *testing.T) {
	mt, err := Parse("image/jpeg")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if mt.Type != "image" || mt.Subtype != "jpeg" {
		t.Fatalf("Parse(%q) = %+v", "image/jpeg", mt)
	}
}

func TestParseRejectsMissingSlash(t *testing.T) {
	if _, err := Parse("image"); err == nil {
		t.Fatal("Parse(\"image\") should fail without a subtype")
	}
}

func TestExtensionOverrides(t *testing.T) {
	cases := []struct {
		mt   MediaType
		want string
	}{
		{MediaType{"image", "jpeg"}, "jpeg"},
		{MediaType{"image", "png"}, "png"},
	}
	for _, c := range cases {
		if got := c.mt.Extension(); got != c.want {
			t.Errorf("Extension(%v) = %q, want %q", c.mt, got, c.want)
		}
	}
}

func TestExtensionFallback(t *testing.T) {
	mt := MediaType{"application", "x-totally-unknown-type"}
	if got, want := mt.Extension(), "bin"; got != want {
		t.Errorf("Extension(%v) = %q, want %q", mt, got, want)
	}
}

func TestIsImage(t *testing.T) {
	if !(MediaType{"image", "jpeg"}).IsImage() {
		t.Error("image/jpeg should be an image")
	}
	if (MediaType{"text", "plain"}).IsImage() {
		t.Error("text/plain should not be an image")
	}
}
