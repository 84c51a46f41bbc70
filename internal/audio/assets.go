package audio

import (
	"embed"
	"io/fs"
	"path"
)

// builtinSounds contains the WAV chimes shipped with tonepick. They seed an
// empty library so the picker always has something to offer.
//
//go:embed assets/*.wav
var builtinSounds embed.FS

// BuiltinSound is one embedded chime.
type BuiltinSound struct {
	Name string // file name without extension, e.g. "classic_bell"
	Data []byte
}

// BuiltinSounds returns the embedded chimes in directory order.
func BuiltinSounds() ([]BuiltinSound, error) {
	entries, err := fs.ReadDir(builtinSounds, "assets")
	if err != nil {
		return nil, err
	}

	sounds := make([]BuiltinSound, 0, len(entries))
	for _, entry := range entries {
		data, err := builtinSounds.ReadFile(path.Join("assets", entry.Name()))
		if err != nil {
			return nil, err
		}
		name := entry.Name()
		sounds = append(sounds, BuiltinSound{
			Name: name[:len(name)-len(path.Ext(name))],
			Data: data,
		})
	}
	return sounds, nil
}
