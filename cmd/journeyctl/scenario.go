package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/service"
)

// scenario mirrors the questionnaire input as a YAML document.
type scenario struct {
	Income               float64 `yaml:"income"`
	Savings              float64 `yaml:"savings"`
	HasRetirementSavings bool    `yaml:"has_retirement_savings"`
	NewConstruction      bool    `yaml:"new_construction"`
	RateBps              int     `yaml:"rate_bps"`
}

func loadScenario(path string) (scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scenario{}, fmt.Errorf("reading scenario file: %w", err)
	}
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return scenario{}, fmt.Errorf("parsing scenario file: %w", err)
	}
	if s.RateBps == 0 {
		s.RateBps = service.DefaultQuizRateBps
	}
	return s, nil
}

func quizCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quiz [scenario-file]",
		Short: "Run the full questionnaire calculation from a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScenario(args[0])
			if err != nil {
				return err
			}

			income := decimal.NewFromFloat(s.Income)
			savings := decimal.NewFromFloat(s.Savings)

			calc := service.NewAffordabilityCalculator()
			breakdown, err := calc.QuizBreakdown(income, savings, s.RateBps)
			if err != nil {
				return err
			}

			in := service.TotalIncentivesInput{
				HomePrice:        breakdown.AffordablePrice,
				AnnualIncome:     income,
				FHSAContribution: savings,
				NewConstruction:  s.NewConstruction,
			}
			if s.HasRetirementSavings {
				hbpLimit := decimal.NewFromInt(35_000)
				in.RetirementBalance = hbpLimit
				in.RequestedWithdrawal = hbpLimit
			}
			incentives := service.NewIncentiveCalculator().TotalIncentives(in)

			fmt.Printf("Affordable price:  $%s\n", breakdown.AffordablePrice)
			fmt.Printf("Mortgage:          $%s\n", breakdown.Mortgage)
			fmt.Printf("Down payment:      $%s\n", breakdown.DownPayment)
			fmt.Printf("Closing costs:     $%s\n", breakdown.ClosingCosts)
			fmt.Printf("Emergency buffer:  $%s\n", breakdown.Buffer)
			fmt.Println()
			fmt.Printf("PTT exemption:     $%s\n", incentives.PTTExemption)
			fmt.Printf("GST rebate:        $%s\n", incentives.GSTRebate)
			fmt.Printf("FHSA tax benefit:  $%s\n", incentives.FHSABenefit)
			fmt.Printf("HBP benefit:       $%s\n", incentives.HBPBenefit)
			fmt.Printf("Home owner grant:  $%s\n", incentives.OwnerGrant)
			fmt.Printf("Total incentives:  $%s\n", incentives.Total)
			return nil
		},
	}
}
