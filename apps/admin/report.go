package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core/schedule"
)

const cellWidth = 12

// printGrid prints the weekly schedule of a teacher, one row per hour. Cells are colored by kind when `colored`.
func (cli *commandLine) printGrid(ctx context.Context, teacherID string, colored bool) error {
	t, err := cli.teacherSvc.GetByID(ctx, teacherID)
	if err != nil {
		return err
	}
	g, err := cli.scheduleSvc.Grid(ctx, t.ID)
	if err != nil {
		return errors.Wrap(err, "building grid")
	}

	c := color.New()
	c.SetOutput(cli.out)
	if !colored {
		c.Disable()
	}

	fmt.Fprintf(cli.out, "%s\n\n", c.Bold(t.Name))

	header := []string{pad("Time", 6)}
	for _, d := range g.Days {
		header = append(header, pad(d, cellWidth))
	}
	fmt.Fprintln(cli.out, strings.Join(header, " | "))

	for _, row := range g.Rows {
		line := []string{pad(row.Time, 6)}
		for _, cell := range row.Cells {
			line = append(line, colorize(c, cell.Kind, pad(cellText(cell), cellWidth)))
		}
		fmt.Fprintln(cli.out, strings.Join(line, " | "))
	}
	return nil
}

func cellText(cell schedule.Cell) string {
	switch cell.Kind {
	case schedule.KindLesson:
		return cell.Label
	case schedule.KindBreak:
		return "Break"
	case schedule.KindAvailable:
		return "Available"
	}
	return "-"
}

func colorize(c *color.Color, kind, s string) string {
	switch kind {
	case schedule.KindLesson:
		return c.Blue(s)
	case schedule.KindBreak:
		return c.Yellow(s)
	case schedule.KindAvailable:
		return c.Green(s)
	}
	return c.Grey(s)
}

func pad(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "~"
	}
	return s + strings.Repeat(" ", width-len(s))
}

// printSummary prints the payment summary of a teacher.
func (cli *commandLine) printSummary(ctx context.Context, teacherID string) error {
	t, err := cli.teacherSvc.GetByID(ctx, teacherID)
	if err != nil {
		return err
	}
	sum, err := cli.paymentSvc.Summary(ctx, t)
	if err != nil {
		return errors.Wrap(err, "summarizing payments")
	}

	fmt.Fprintf(cli.out, "%s\n", t.Name)
	fmt.Fprintf(cli.out, "Total earnings:   $%.2f\n", sum.TotalEarnings)
	fmt.Fprintf(cli.out, "Pending payments: $%.2f\n", sum.PendingPayments)
	fmt.Fprintf(cli.out, "This month:       $%.2f\n", sum.ThisMonth)
	fmt.Fprintf(cli.out, "Last month:       $%.2f\n", sum.LastMonth)
	fmt.Fprintf(cli.out, "Growth:           %+.1f%%\n", sum.Growth)
	return nil
}
