package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type planRow struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Monthly       decimal.Decimal `json:"monthly"`
	Annual        decimal.Decimal `json:"annual"`
	AnnualSavings decimal.Decimal `json:"annualSavings"`
	Recommended   bool            `json:"recommended"`
}

func newPlansCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List pricing plans with their annual savings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.ensureEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			plans, err := env.data.ListPlans(cmd.Context())
			if err != nil {
				return err
			}

			out := make([]planRow, 0, len(plans))
			for _, p := range plans {
				out = append(out, planRow{
					ID:            p.ID,
					Name:          p.Name,
					Monthly:       p.Price.Monthly,
					Annual:        p.Price.Annual,
					AnnualSavings: p.AnnualSavings(),
					Recommended:   p.IsRecommended,
				})
			}
			if ctx.wantsJSON(cmd) {
				return writeJSON(cmd, out)
			}

			rows := make([][]string, 0, len(out))
			for _, p := range out {
				name := p.Name
				if p.Recommended {
					name += " *"
				}
				rows = append(rows, []string{
					p.ID,
					name,
					"$" + p.Monthly.StringFixed(2),
					"$" + p.Annual.StringFixed(2),
					"$" + p.AnnualSavings.StringFixed(2),
				})
			}
			writeTable(cmd,
				[]string{"ID", "Plan", "Monthly", "Annual", "Saves"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
			)
			return nil
		},
	}
}
