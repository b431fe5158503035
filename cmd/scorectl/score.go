package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	service "github.com/okian/cogscore/internal/app"
	"github.com/okian/cogscore/internal/domain/form"
	"github.com/okian/cogscore/internal/domain/scoring"
	"github.com/pkg/errors"
	urfave "github.com/urfave/cli/v3"
)

type scoreResult struct {
	Score        float64       `json:"score" yaml:"score"`
	ScoreDisplay string        `json:"score_display" yaml:"score_display"`
	Label        scoring.Label `json:"label" yaml:"label"`
	Answers      form.Answers  `json:"answers" yaml:"answers"`
	Input        scoring.Input `json:"input" yaml:"input"`
}

func newScoreCmd() *urfave.Command {
	return &urfave.Command{
		Name:   "score",
		Usage:  "Score one set of answers; omitted flags take the page defaults",
		Flags:  scoreFlags(),
		Action: cmdScore,
	}
}

// flagName turns a form key into a dashed flag name.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func scoreFlags() []urfave.Flag {
	var flags []urfave.Flag
	for _, f := range form.Fields() {
		flags = append(flags, &urfave.FloatFlag{
			Name:  flagName(f.Key),
			Usage: fmt.Sprintf("%s [%g-%g]", f.Label, f.Min, f.Max),
			Value: f.Default,
		})
	}
	for _, c := range form.Choices() {
		flags = append(flags, &urfave.StringFlag{
			Name:  flagName(c.Key),
			Usage: fmt.Sprintf("%s [%s]", c.Label, strings.Join(c.Options, ", ")),
			Value: c.Default,
		})
	}
	return flags
}

func cmdScore(ctx context.Context, cmd *urfave.Command) error {
	v := url.Values{}
	for _, f := range form.Fields() {
		v.Set(f.Key, strconv.FormatFloat(cmd.Float(flagName(f.Key)), 'f', -1, 64))
	}
	for _, c := range form.Choices() {
		v.Set(c.Key, cmd.String(flagName(c.Key)))
	}

	answers, err := form.FromValues(v)
	if err != nil {
		return errors.Wrap(err, "parsing flags")
	}

	res, err := service.New().Evaluate(ctx, answers)
	if err != nil {
		return errors.Wrap(err, "scoring answers")
	}

	if err := encode(cmd, scoreResult{
		Score:        res.Output.Score,
		ScoreDisplay: res.Output.Display(),
		Label:        res.Output.Label,
		Answers:      res.Answers,
		Input:        res.Input,
	}); err != nil {
		return errors.Wrapf(err, "error encoding result: %+v", res.Output)
	}
	return nil
}
