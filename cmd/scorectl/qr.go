package main

import (
	"context"
	"fmt"

	"github.com/okian/cogscore/internal/adapters/qr"
	"github.com/okian/cogscore/internal/config"
	"github.com/okian/cogscore/pkg/logger"
	"github.com/pkg/errors"
	urfave "github.com/urfave/cli/v3"
)

const (
	defaultQRFile = "qr_code.png"

	qrURLFlagName      = "url"
	qrOutFlagName      = "out"
	qrSizeFlagName     = "size"
	qrRecoveryFlagName = "recovery"
)

type qrResult struct {
	URL  string `json:"url" yaml:"url"`
	Path string `json:"path" yaml:"path"`
	Size int    `json:"size" yaml:"size"`
}

func newQRCmd() *urfave.Command {
	return &urfave.Command{
		Name:  "qr",
		Usage: "Write the QR code for the deployed page to a PNG file",
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:  qrURLFlagName,
				Usage: "Address encoded in the QR code",
				Value: config.New().DeployedURL,
			},
			&urfave.StringFlag{
				Name:    qrOutFlagName,
				Aliases: []string{"o"},
				Usage:   "PNG file to write",
				Value:   defaultQRFile,
			},
			&urfave.IntFlag{
				Name:  qrSizeFlagName,
				Usage: fmt.Sprintf("Image edge length in pixels [%d-%d]", qr.MinSize, qr.MaxSize),
				Value: qr.DefaultSize,
			},
			&urfave.StringFlag{
				Name:  qrRecoveryFlagName,
				Usage: "Error correction level [low, medium, high, highest]",
				Value: "medium",
			},
		},
		Action: cmdQR,
	}
}

func cmdQR(ctx context.Context, cmd *urfave.Command) error {
	size := int(cmd.Int(qrSizeFlagName))
	if size < qr.MinSize || size > qr.MaxSize {
		return errors.Errorf("size must be within [%d,%d], got %d", qr.MinSize, qr.MaxSize, size)
	}
	recovery := cmd.String(qrRecoveryFlagName)
	if _, err := qr.ParseRecovery(recovery); err != nil {
		return errors.Wrap(err, "invalid recovery level")
	}

	g := qr.NewGenerator(qr.WithSize(size), qr.WithRecovery(recovery))
	u, out := cmd.String(qrURLFlagName), cmd.String(qrOutFlagName)
	if err := g.WriteFile(ctx, u, out); err != nil {
		return errors.Wrapf(err, "failed to write %s", out)
	}
	logger.Get().Debug(ctx, "qr code written", logger.String("path", out), logger.String("url", u))

	return encode(cmd, qrResult{URL: u, Path: out, Size: g.Size()})
}
