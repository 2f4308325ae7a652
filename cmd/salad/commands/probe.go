package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/agiangrant/salad"
	"github.com/agiangrant/salad/al"
)

// Probe implements the 'salad probe' command.
// It opens the OpenAL library the loader would pick and reports how much of
// each symbol group resolved.
func Probe(args []string) error {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	var lf loaderFlags
	lf.register(fs)
	missing := fs.Bool("missing", false, "list entry points that did not resolve")
	device := fs.Bool("device", false, "open the default device and report its details")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	opts, log, err := lf.options(fs, "salad.probe")
	if err != nil {
		return err
	}
	loader := salad.New(opts...)

	var t salad.Table
	err = loader.LoadDefault(&t)
	if errors.Is(err, salad.ErrNoLibrary) {
		return err
	}
	lib := loader.Library()
	log.Debug("loaded", slog.String("library", lib.Name), slog.Bool("strict", loader.Strict()))

	fmt.Printf("library: %s\n", lib.Name)
	for _, g := range salad.Groups() {
		total := len(g.Procs())
		line := fmt.Sprintf("%-8s %3d/%d", g, total-len(t.Missing(g)), total)
		if ext := g.Extension(); ext != "" {
			line += "  " + ext
		}
		fmt.Println(line)
		if *missing {
			for _, p := range t.Missing(g) {
				fmt.Printf("  missing %s\n", p)
			}
		}
	}
	if err != nil {
		return err
	}

	if *device {
		return probeDevice(al.Bind(&t), log)
	}
	return nil
}

func probeDevice(api *al.API, log *slog.Logger) error {
	alc := api.ALC
	if alc.OpenDevice == nil || alc.CloseDevice == nil || alc.GetString == nil {
		return fmt.Errorf("device entry points not resolved")
	}

	dev := alc.OpenDevice(nil)
	if dev == 0 {
		return fmt.Errorf("failed to open the default device")
	}
	defer func() {
		if !alc.CloseDevice(dev) {
			log.Warn("failed to close device")
		}
	}()

	fmt.Printf("device: %s\n", alc.GetString(dev, al.ALCDeviceSpecifier))
	if alc.GetIntegerv != nil {
		var major, minor int32
		alc.GetIntegerv(dev, al.ALCMajorVersion, 1, &major)
		alc.GetIntegerv(dev, al.ALCMinorVersion, 1, &minor)
		fmt.Printf("alc version: %d.%d\n", major, minor)
	}
	if alc.IsExtensionPresent != nil {
		fmt.Printf("%s: %t\n", al.ExtEFX, alc.IsExtensionPresent(dev, al.ExtEFX))
	}
	return api.DeviceErr(dev)
}
