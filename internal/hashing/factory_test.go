package hashing

import (
	"encoding/hex"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		algo string
		want string // hex digest of "abc"
	}{
		{name: "empty selects sha1", algo: "", want: "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{name: "sha1", algo: "sha1", want: "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{name: "case insensitive", algo: " SHA256 ", want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{name: "md5", algo: "md5", want: "900150983cd24fb0d6963f7d28e17f72"},
		{name: "xxhash", algo: "xxhash", want: "44bc2cf5ad770999"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctor, err := New(tt.algo)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.algo, err)
			}
			h := ctor()
			h.Write([]byte("abc"))
			if got := hex.EncodeToString(h.Sum(nil)); got != tt.want {
				t.Errorf("digest = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNew_FreshHashPerCall(t *testing.T) {
	ctor, err := New("sha256")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	a, b := ctor(), ctor()
	a.Write([]byte("data"))
	if len(b.Sum(nil)) != 32 {
		t.Fatal("unexpected digest length")
	}
	if hex.EncodeToString(a.Sum(nil)) == hex.EncodeToString(b.Sum(nil)) {
		t.Error("constructor returned a shared hash state")
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("crc32")
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("New() error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestNames(t *testing.T) {
	got := Names()
	want := []string{"md5", "sha1", "sha256", "xxhash"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
