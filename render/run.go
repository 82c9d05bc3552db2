// Package render implements the render subcommand.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"escx/printer"
	"escx/printer/escpos"
	"escx/receipt"
	"escx/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Trace = cmd.Bool("trace")
	env.Overwrite = cmd.Bool("overwrite")
	env.Codepage = env.Cfg.Printer.Codepage
	if cp := cmd.String("codepage"); len(cp) > 0 {
		env.Codepage = cp
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read source %q: %w", src, err)
	}
	env.Rpt.Store(fmt.Sprintf("input/%s", filepath.Base(src)), src)

	out := os.Stdout
	if len(dst) > 0 {
		flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if !env.Overwrite {
			flags |= os.O_EXCL
		}
		// devices (/dev/usb/lp0 and the likes) open fine with O_EXCL, the
		// guard only protects regular files
		if out, err = os.OpenFile(dst, flags, 0644); err != nil {
			return fmt.Errorf("unable to open destination %q: %w", dst, err)
		}
		defer out.Close()
	} else {
		dst = "STDOUT"
	}

	log.Info("Rendering starting", zap.String("source", src), zap.String("destination", dst), zap.String("charset", env.Codepage))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	opts := receipt.Options{StyleDefaults: env.Cfg.Document.StyleDefaults}

	if env.Trace {
		rec := &printer.Recorder{}
		if err := receipt.RenderBytes(data, rec, opts, log); err != nil {
			return err
		}
		env.Rpt.StoreData("trace", []byte(rec.Trace()))
		if _, err := out.WriteString(rec.Trace()); err != nil {
			return fmt.Errorf("unable to write trace: %w", err)
		}
		return nil
	}

	drv, err := escpos.New(out, escpos.Config{CodePage: env.Codepage}, log)
	if err != nil {
		return err
	}
	return receipt.RenderBytes(data, drv, opts, log)
}
