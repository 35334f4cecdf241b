package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-skyangle/internal/conversion"
	"github.com/ahrav/go-skyangle/pkg/skyangle"
)

func convertCmd(a *app) *cobra.Command {
	var (
		from      string
		to        string
		precision int
		withUnit  bool
	)

	cmd := &cobra.Command{
		Use:   "convert [flags] [--] VALUE...",
		Short: "Convert values from one unit to another",
		Long: "Convert plain numbers from one angle unit to another, one result per line.\n" +
			"Values are read from the arguments, or from stdin (whitespace separated) when none are given.\n" +
			"Use -- before negative values.",
		Example: "  skyangle convert --from deg --to mas 1.5 0.25\n" +
			"  skyangle convert --from arcsec --to rad -- -12.5",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := skyangle.ParseUnit(from)
			if err != nil {
				return err
			}
			dst, err := skyangle.ParseUnit(to)
			if err != nil {
				return err
			}
			if precision != conversion.Precision32 && precision != conversion.Precision64 {
				return fmt.Errorf("precision must be %d or %d, got %d",
					conversion.Precision32, conversion.Precision64, precision)
			}

			values, err := readValues(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			a.logger.Debug("converting", "from", src.String(), "to", dst.String(),
				"precision", precision, "count", len(values))

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, v := range values {
				line := format(src, dst, precision, v)
				if withUnit {
					line += " " + dst.String()
				}
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "deg", "source unit (rad, deg, arcmin, arcsec, mas)")
	cmd.Flags().StringVarP(&to, "to", "t", "rad", "target unit (rad, deg, arcmin, arcsec, mas)")
	cmd.Flags().IntVar(&precision, "precision", conversion.Precision64, "floating-point width in bits (32 or 64)")
	cmd.Flags().BoolVar(&withUnit, "with-unit", false, "append the target unit to each result")
	return cmd
}

// format converts v and renders it with Angle.String at the requested width.
func format(src, dst skyangle.Unit, precision int, v float64) string {
	if precision == conversion.Precision32 {
		return skyangle.New(src, float32(v)).In(dst).String()
	}
	return skyangle.New(src, v).In(dst).String()
}

// readValues parses args, or whitespace-separated tokens from r when args is empty.
func readValues(r io.Reader, args []string) ([]float64, error) {
	tokens := args
	if len(tokens) == 0 {
		sc := bufio.NewScanner(r)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			tokens = append(tokens, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read values: %w", err)
		}
	}

	values := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a number", tok)
		}
		values = append(values, v)
	}
	return values, nil
}
