package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSON field names for each key. Keys missing from a settings file keep
// their current value, so old files stay loadable as keys are added.
var (
	boolNames = map[Bool]string{
		Crop:                 "crop",
		SkipEFBCopyToRAM:     "skipEFBCopyToRAM",
		SkipXFBCopyToRAM:     "skipXFBCopyToRAM",
		ImmediateXFB:         "immediateXFB",
		DisableFog:           "disableFog",
		DumpTextures:         "dumpTextures",
		HiresTextures:        "hiresTextures",
		AudioMuted:           "audioMuted",
		Debug:                "debug",
		Wii:                  "wii",
		BluetoothPassthrough: "bluetoothPassthrough",
	}
	intNames = map[Int]string{
		EFBScale:          "efbScale",
		AspectRatio:       "aspectRatio",
		StereoMode:        "stereoMode",
		StereoDepth:       "stereoDepth",
		StereoConvergence: "stereoConvergence",
		Volume:            "volume",
	}
	floatNames = map[Float]string{
		EmulationSpeed: "emulationSpeed",
	}
	stringNames = map[String]string{
		PostProcessShader: "postProcessShader",
	}
)

// Load reads the settings file at path into s. Keys absent from the file
// are left untouched.
func Load(s *Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("settings file %s is not valid JSON", path)
	}

	for key, name := range boolNames {
		if r := gjson.GetBytes(data, name); r.Exists() {
			s.SetBool(key, r.Bool())
		}
	}
	for key, name := range intNames {
		if r := gjson.GetBytes(data, name); r.Exists() {
			s.SetInt(key, int(r.Int()))
		}
	}
	for key, name := range floatNames {
		if r := gjson.GetBytes(data, name); r.Exists() {
			s.SetFloat(key, r.Float())
		}
	}
	for key, name := range stringNames {
		if r := gjson.GetBytes(data, name); r.Exists() {
			s.SetString(key, r.String())
		}
	}

	return nil
}

// Save writes every setting in s to the file at path as a flat JSON
// object.
func Save(s *Store, path string) error {
	data := []byte("{}")
	var err error

	for key, name := range boolNames {
		if data, err = sjson.SetBytes(data, name, s.GetBool(key)); err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
	}
	for key, name := range intNames {
		if data, err = sjson.SetBytes(data, name, s.GetInt(key)); err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
	}
	for key, name := range floatNames {
		if data, err = sjson.SetBytes(data, name, s.GetFloat(key)); err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
	}
	for key, name := range stringNames {
		if data, err = sjson.SetBytes(data, name, s.GetString(key)); err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
	}

	return os.WriteFile(path, data, 0644)
}
