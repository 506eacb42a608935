package parser

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"devproc/internal/process"
)

const (
	keyDirectory      = "directory"
	keyCommand        = "command"
	keyPort           = "port"
	keyDisableAutorun = "disable_autorun"
	keyIndex          = "index"
	keySleep          = "sleep"
)

// ini.v1 folds a literal [DEFAULT] section into the unnamed one.
var defaultSectionHeader = regexp.MustCompile(`(?m)^[ \t]*\[[ \t]*` + ini.DefaultSection + `[ \t]*\][ \t]*\r?$`)

// ParseINI reads the structured format. Sections keep their declaration order;
// keys outside any section and unknown keys are ignored. A section named
// DEFAULT is rejected.
func ParseINI(r io.Reader, opts Options) ([]process.Process, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if defaultSectionHeader.Match(data) {
		return nil, fmt.Errorf("%w: section name %q is reserved", ErrInvalidConfig, ini.DefaultSection)
	}

	f, err := ini.LoadSources(ini.LoadOptions{
		// Commands routinely contain '#' and ';'.
		IgnoreInlineComment: true,
		KeyValueDelimiters:  "=",
	}, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var procs []process.Process
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		p, err := processFromSection(sec, len(procs), opts)
		if err != nil {
			return nil, err
		}
		procs = append(procs, p)
	}
	return procs, nil
}

// sectionKeys holds only the keys written in one section. Section.Key and
// Section.HasKey also consult parent sections of dotted names ("web" for
// "web.worker"), which must not leak into a sibling process.
type sectionKeys struct {
	label  string
	values map[string]string
}

func (k sectionKeys) lookup(name string) (string, bool) {
	v, ok := k.values[name]
	return v, ok
}

func processFromSection(sec *ini.Section, position int, opts Options) (process.Process, error) {
	label, err := process.NormalizeLabel(sec.Name())
	if err != nil {
		return process.Process{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	keys := sectionKeys{label: label, values: sec.KeysHash()}

	command, _ := keys.lookup(keyCommand)
	p := process.Process{
		Label:   label,
		Command: command,
		Index:   position,
	}

	if raw, ok := keys.lookup(keyDirectory); ok {
		dir, err := ExpandDir(raw, opts.BaseDir, opts.HomeDir)
		if err != nil {
			return process.Process{}, fmt.Errorf("process %s: %w", label, err)
		}
		p.Dir = dir
	}

	if p.Port, err = keys.intValue(keyPort, 0); err != nil {
		return process.Process{}, err
	}
	if _, ok := keys.lookup(keyPort); ok && (p.Port <= 0 || p.Port > process.MaxPort) {
		return process.Process{}, fmt.Errorf("%w: process %s: port must be between 1 and %d, got %d", ErrInvalidConfig, label, process.MaxPort, p.Port)
	}
	if p.DisableAutorun, err = keys.boolValue(keyDisableAutorun); err != nil {
		return process.Process{}, err
	}
	if p.Index, err = keys.intValue(keyIndex, position); err != nil {
		return process.Process{}, err
	}
	if p.Sleep, err = keys.intValue(keySleep, 0); err != nil {
		return process.Process{}, err
	}
	if p.Sleep < 0 {
		return process.Process{}, fmt.Errorf("%w: process %s: sleep must not be negative", ErrInvalidConfig, label)
	}
	return p, nil
}

func (k sectionKeys) intValue(name string, def int) (int, error) {
	raw, ok := k.lookup(name)
	if !ok {
		return def, nil
	}
	raw = strings.TrimSpace(raw)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: process %s: %s must be an integer, got %q", ErrInvalidConfig, k.label, name, raw)
	}
	return v, nil
}

func (k sectionKeys) boolValue(name string) (bool, error) {
	raw, ok := k.lookup(name)
	if !ok {
		return false, nil
	}
	switch raw = strings.TrimSpace(raw); raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: process %s: %s must be \"true\" or \"false\", got %q", ErrInvalidConfig, k.label, name, raw)
	}
}
