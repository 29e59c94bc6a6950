package quiltanim

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const Version = "0.1"

const (
	DefaultIncrementFormat = "00"
	DefaultFormat          = "png"
	// OutputBaseName is the name of the output file, the extension follows the configured format.
	OutputBaseName = "animated_quilt"
)

// Options holds the user supplied parameters of a run, from flags or a yaml file.
// Zero values are replaced by defaults in Config.
type Options struct {
	Folder          string `yaml:"folder"`
	BaseName        string `yaml:"name"`
	IncrementFormat string `yaml:"increment"`
	Format          string `yaml:"format"`
	Preset          string `yaml:"preset"`
	Rows            int    `yaml:"rows"`
	Columns         int    `yaml:"columns"`
	OutFile         string `yaml:"out"`
	Workers         int    `yaml:"workers"`
	JPEGQuality     int    `yaml:"jpeg_quality"`

	Quiet   bool `yaml:"-"`
	Verbose bool `yaml:"-"`
}

// RunConfig is the validated, fixed configuration of a single run.
type RunConfig struct {
	Grid    Grid
	Naming  Naming
	Format  Format
	OutPath string
	Workers int
}

// LoadOptions reads Options from the yaml file at path. Unknown keys are an error.
func LoadOptions(path string) (opt Options, err error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return opt, fmt.Errorf("os.ReadFile %q failed: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(bin))
	dec.KnownFields(true)
	if err = dec.Decode(&opt); err != nil {
		return opt, fmt.Errorf("yaml decode %q failed: %w", path, err)
	}
	return opt, nil
}

// Merge returns opt with every non-zero field of override applied on top.
func (opt Options) Merge(override Options) Options {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	setString(&opt.Folder, override.Folder)
	setString(&opt.BaseName, override.BaseName)
	setString(&opt.IncrementFormat, override.IncrementFormat)
	setString(&opt.Format, override.Format)
	setString(&opt.Preset, override.Preset)
	setString(&opt.OutFile, override.OutFile)
	setInt(&opt.Rows, override.Rows)
	setInt(&opt.Columns, override.Columns)
	setInt(&opt.Workers, override.Workers)
	setInt(&opt.JPEGQuality, override.JPEGQuality)
	opt.Quiet = opt.Quiet || override.Quiet
	opt.Verbose = opt.Verbose || override.Verbose
	return opt
}

// Grid returns the grid of the configured preset, with Rows and Columns overriding it when set.
func (opt Options) Grid() (Grid, error) {
	name := opt.Preset
	if name == "" && (opt.Rows == 0 || opt.Columns == 0) {
		name = DefaultPreset
	}
	var g Grid
	if name != "" {
		p, ok := LookupPreset(name)
		if !ok {
			return g, &ConfigError{Field: "preset", Reason: fmt.Sprintf("unknown preset %q", name)}
		}
		g = p.Grid
	}
	if opt.Rows != 0 {
		g.Rows = opt.Rows
	}
	if opt.Columns != 0 {
		g.Columns = opt.Columns
	}
	return g, g.Validate()
}

// Config validates opt and returns the RunConfig of a run. All errors are *ConfigError.
func (opt Options) Config() (RunConfig, error) {
	var cfg RunConfig
	if strings.TrimSpace(opt.Folder) == "" {
		return cfg, &ConfigError{Field: "folder", Reason: "please select a folder containing images"}
	}
	if strings.TrimSpace(opt.BaseName) == "" {
		return cfg, &ConfigError{Field: "file name", Reason: "must not be empty"}
	}
	if opt.IncrementFormat == "" {
		opt.IncrementFormat = DefaultIncrementFormat
	}
	if opt.Format == "" {
		opt.Format = DefaultFormat
	}
	pad, err := ParseIncrementFormat(opt.IncrementFormat)
	if err != nil {
		return cfg, err
	}
	format, err := ParseFormat(opt.Format)
	if err != nil {
		return cfg, err
	}
	grid, err := opt.Grid()
	if err != nil {
		return cfg, err
	}
	if opt.JPEGQuality < 0 || opt.JPEGQuality > 100 {
		return cfg, &ConfigError{Field: "jpeg quality", Reason: fmt.Sprintf("must be between 1 and 100, not %d", opt.JPEGQuality)}
	}

	ext := strings.TrimPrefix(opt.Format, ".")
	cfg = RunConfig{
		Grid: grid,
		Naming: Naming{
			Folder:   opt.Folder,
			BaseName: opt.BaseName,
			PadWidth: pad,
			Ext:      ext,
		},
		Format:  format,
		OutPath: destinationFilename(opt.Folder, opt.OutFile, ext),
		Workers: max(opt.Workers, 1),
	}
	return cfg, nil
}

// destinationFilename returns the output path, animated_quilt.<ext> inside folder by default.
// An outfile without directory is placed inside folder as well.
func destinationFilename(folder, outfile, ext string) string {
	if outfile == "" {
		outfile = OutputBaseName + "." + ext
	}
	if filepath.IsAbs(outfile) || filepath.Dir(outfile) != "." {
		return outfile
	}
	return filepath.Join(folder, outfile)
}
