package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/venuecraft/venuesim/internal/models"
	"github.com/venuecraft/venuesim/internal/simulator"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "venuesim",
	Short: "Simulates customer lifecycle data for hospitality venues",
	Long:  `venuesim is a CLI tool that simulates customer arrivals, table seating, ordering, spending and departures across bars, restaurants, nightclubs and fast food venues, streaming the resulting events to files or Kafka.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim, err := simulator.NewSimulator(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating simulator: %v\n", err)
			os.Exit(1)
		}
		sim.Run()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.venuesim.yaml)")

	rootCmd.Flags().Int("seed", 42, "Random seed for simulation")
	rootCmd.Flags().String("start-date", time.Now().Format(time.RFC3339), "Start date for simulation")
	rootCmd.Flags().String("end-date", time.Now().AddDate(0, 0, 7).Format(time.RFC3339), "End date for simulation")
	rootCmd.Flags().Int("tick-interval-minutes", 15, "Simulated minutes advanced per tick")
	rootCmd.Flags().Int("initial-venues", 8, "Initial number of venues")
	rootCmd.Flags().Int("staff-per-venue-min", 4, "Minimum staff hired per venue")
	rootCmd.Flags().Int("staff-per-venue-max", 8, "Maximum staff hired per venue")
	rootCmd.Flags().Int("max-active-customers", 2000, "Cap on concurrently active customer groups")
	rootCmd.Flags().String("city-name", "Brighton", "City the venues operate in")
	rootCmd.Flags().Float64("city-popularity-multiplier", 1.0, "City-wide arrival rate multiplier")
	rootCmd.Flags().Float64("city-affluence", 1.0, "City-wide spending budget multiplier")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-path", "", "Output directory path (if not using Kafka)")
	rootCmd.Flags().String("output-format", "json", "Output format: json, csv or parquet")
	rootCmd.Flags().Bool("continuous", false, "Run simulation in continuous (throttled) mode")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".venuesim")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
