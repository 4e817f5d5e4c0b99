package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/effendiaiwebsite/housesinbc/internal/domain/service"
)

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "journeyctl",
	Short: "Offline homebuyer calculators",
	Long:  "Run the affordability, incentive, rate and closing-cost calculators without a running service.",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "journeyctl %s (commit %s)\n", version, commit)
		},
	}
}

func affordabilityCmd() *cobra.Command {
	var (
		income  float64
		savings float64
		rateBps int
	)
	cmd := &cobra.Command{
		Use:   "affordability",
		Short: "Estimate the maximum affordable home price",
		RunE: func(cmd *cobra.Command, args []string) error {
			calc := service.NewAffordabilityCalculator()
			breakdown, err := calc.QuizBreakdown(
				decimal.NewFromFloat(income),
				decimal.NewFromFloat(savings),
				rateBps,
			)
			if err != nil {
				return err
			}

			fmt.Printf("Affordable price:  $%s\n", breakdown.AffordablePrice)
			fmt.Printf("Mortgage:          $%s\n", breakdown.Mortgage)
			fmt.Printf("Down payment:      $%s\n", breakdown.DownPayment)
			fmt.Printf("Closing costs:     $%s\n", breakdown.ClosingCosts)
			fmt.Printf("Emergency buffer:  $%s\n", breakdown.Buffer)
			return nil
		},
	}
	cmd.Flags().Float64Var(&income, "income", 0, "gross annual household income")
	cmd.Flags().Float64Var(&savings, "savings", 0, "total savings available")
	cmd.Flags().IntVar(&rateBps, "rate-bps", service.DefaultQuizRateBps, "annual mortgage rate in basis points")
	cmd.MarkFlagRequired("income")
	return cmd
}

func incentivesCmd() *cobra.Command {
	var (
		price           float64
		income          float64
		fhsa            float64
		retirement      float64
		withdrawal      float64
		newConstruction bool
		senior          bool
	)
	cmd := &cobra.Command{
		Use:   "incentives",
		Short: "Estimate first-year government incentive savings",
		RunE: func(cmd *cobra.Command, args []string) error {
			calc := service.NewIncentiveCalculator()
			breakdown := calc.TotalIncentives(service.TotalIncentivesInput{
				HomePrice:           decimal.NewFromFloat(price),
				AnnualIncome:        decimal.NewFromFloat(income),
				FHSAContribution:    decimal.NewFromFloat(fhsa),
				RetirementBalance:   decimal.NewFromFloat(retirement),
				RequestedWithdrawal: decimal.NewFromFloat(withdrawal),
				NewConstruction:     newConstruction,
				SeniorOrVeteran:     senior,
			})

			fmt.Printf("PTT exemption:     $%s\n", breakdown.PTTExemption)
			fmt.Printf("GST rebate:        $%s\n", breakdown.GSTRebate)
			fmt.Printf("FHSA tax benefit:  $%s\n", breakdown.FHSABenefit)
			fmt.Printf("HBP benefit:       $%s\n", breakdown.HBPBenefit)
			fmt.Printf("Home owner grant:  $%s\n", breakdown.OwnerGrant)
			fmt.Printf("Total:             $%s\n", breakdown.Total)
			return nil
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "home purchase price")
	cmd.Flags().Float64Var(&income, "income", 0, "gross annual household income")
	cmd.Flags().Float64Var(&fhsa, "fhsa", 0, "FHSA contribution this year")
	cmd.Flags().Float64Var(&retirement, "retirement-balance", 0, "retirement account balance")
	cmd.Flags().Float64Var(&withdrawal, "withdrawal", 0, "requested Home Buyers' Plan withdrawal")
	cmd.Flags().BoolVar(&newConstruction, "new-construction", false, "property is newly built")
	cmd.Flags().BoolVar(&senior, "senior", false, "buyer is a senior or veteran")
	cmd.MarkFlagRequired("price")
	return cmd
}

func ratesCmd() *cobra.Command {
	var (
		baseBps     int
		creditScore int
		downPercent float64
		firstTime   bool
		loan        float64
		years       int
	)
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Personalize an advertised rate for an applicant profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := service.NewRateEngine()
			calc := service.NewAffordabilityCalculator()

			personalized := engine.PersonalizeRate(baseBps, creditScore, decimal.NewFromFloat(downPercent), firstTime)
			stress := engine.StressTestRate(personalized)

			fmt.Printf("Advertised rate:    %.2f%%\n", float64(baseBps)/100)
			fmt.Printf("Personalized rate:  %.2f%%\n", float64(personalized)/100)
			fmt.Printf("Stress test rate:   %.2f%%\n", float64(stress)/100)

			if loan > 0 {
				principal := decimal.NewFromFloat(loan)
				payment, err := calc.MonthlyPayment(principal, personalized, years)
				if err != nil {
					return err
				}
				stressPayment, err := calc.MonthlyPayment(principal, stress, years)
				if err != nil {
					return err
				}
				fmt.Printf("Monthly payment:    $%s\n", payment)
				fmt.Printf("Stress payment:     $%s\n", stressPayment)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&baseBps, "base-bps", service.DefaultQuizRateBps, "advertised rate in basis points")
	cmd.Flags().IntVar(&creditScore, "credit-score", 700, "applicant credit score")
	cmd.Flags().Float64Var(&downPercent, "down-percent", 20, "down payment as a percentage of the price")
	cmd.Flags().BoolVar(&firstTime, "first-time", true, "applicant is a first-time buyer")
	cmd.Flags().Float64Var(&loan, "loan", 0, "loan amount for payment estimates")
	cmd.Flags().IntVar(&years, "years", service.DefaultAmortizationYears, "amortization period in years")
	return cmd
}

func closingCostsCmd() *cobra.Command {
	var (
		price       float64
		downPayment float64
	)
	cmd := &cobra.Command{
		Use:   "closing-costs",
		Short: "Itemize one-time purchase costs",
		RunE: func(cmd *cobra.Command, args []string) error {
			estimator := service.NewClosingCostEstimator()
			costs, err := estimator.Estimate(decimal.NewFromFloat(price), decimal.NewFromFloat(downPayment))
			if err != nil {
				return err
			}

			fmt.Printf("Legal fees:         $%s\n", costs.LegalFees)
			fmt.Printf("Inspection:         $%s\n", costs.Inspection)
			fmt.Printf("Appraisal:          $%s\n", costs.Appraisal)
			fmt.Printf("Insurance premium:  $%s\n", costs.InsurancePremium)
			fmt.Printf("Total:              $%s\n", costs.Total)
			return nil
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "home purchase price")
	cmd.Flags().Float64Var(&downPayment, "down-payment", 0, "down payment amount")
	cmd.MarkFlagRequired("price")
	return cmd
}

func eligibilityCmd() *cobra.Command {
	var (
		citizen          bool
		bcResident       bool
		ownedBefore      bool
		claimedExemption bool
	)
	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Screen a buyer against first-time buyer program criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := service.CheckFirstTimeBuyerEligibility(service.EligibilityInput{
				CitizenOrPermanentResident: citizen,
				ResidentOfBCTwelveMonths:   bcResident,
				PreviouslyOwnedHome:        ownedBefore,
				PreviouslyClaimedExemption: claimedExemption,
			})

			if result.Eligible {
				fmt.Println("Eligible for first-time buyer programs.")
				return nil
			}
			fmt.Println("Not eligible:")
			for _, reason := range result.Reasons {
				fmt.Printf("  - %s\n", reason)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&citizen, "citizen", true, "Canadian citizen or permanent resident")
	cmd.Flags().BoolVar(&bcResident, "bc-resident", true, "lived in BC for 12 consecutive months")
	cmd.Flags().BoolVar(&ownedBefore, "owned-before", false, "previously owned a principal residence")
	cmd.Flags().BoolVar(&claimedExemption, "claimed-before", false, "previously claimed a first-time buyer exemption")
	return cmd
}

func main() {
	rootCmd.AddCommand(
		versionCmd(),
		affordabilityCmd(),
		incentivesCmd(),
		ratesCmd(),
		closingCostsCmd(),
		eligibilityCmd(),
		quizCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
