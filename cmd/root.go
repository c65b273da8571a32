package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "0.3.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔════════════════════════════════════════════════════════════════════════╗",
		"║  ████████╗ █████╗ ██████╗ ██╗     ███████╗███████╗██╗██╗     ██╗       ║",
		"║  ╚══██╔══╝██╔══██╗██╔══██╗██║     ██╔════╝██╔════╝██║██║     ██║       ║",
		"║     ██║   ███████║██████╔╝██║     █████╗  █████╗  ██║██║     ██║       ║",
		"║     ██║   ██╔══██║██╔══██╗██║     ██╔══╝  ██╔══╝  ██║██║     ██║       ║",
		"║     ██║   ██║  ██║██████╔╝███████╗███████╗██║     ██║███████╗███████╗  ║",
		"║     ╚═╝   ╚═╝  ╚═╝╚═════╝ ╚══════╝╚══════╝╚═╝     ╚═╝╚══════╝╚══════╝  ║",
		"║                                                                        ║",
		"║               Schema-aware synthetic rows for any table                ║",
		"╚════════════════════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                        ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "tablefill",
	Short: "Generate realistic rows for an existing database table",
	Long: `
tablefill reads a table's column metadata (types, lengths, identity,
defaults and primary keys) and inserts generated rows that fit it.

Database Support:
- PostgreSQL
- MySQL
- SQLite
- SQL Server`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("tablefill version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tablefill.config.json)")
	rootCmd.PersistentFlags().String("db", "", "Database URL (overrides config/env)")
	rootCmd.PersistentFlags().String("provider", "", "Database provider (postgresql, mysql, sqlite, sqlserver)")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("tablefill.config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		color.New(color.FgHiBlack).Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
