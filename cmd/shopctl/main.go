// cmd/shopctl/main.go

// shopctl administers the practice database: schema setup and reset,
// sample-data seeding, bulk data generation and quick reports, without
// going through the HTTP server.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shoplabs/shop-backend/internal/config"
	"github.com/shoplabs/shop-backend/internal/database"
	"github.com/shoplabs/shop-backend/internal/repository/mysql"
	"github.com/shoplabs/shop-backend/internal/services"
)

func main() {
	root := &cobra.Command{
		Use:   "shopctl",
		Short: "Administer the shop practice database",
	}

	root.AddCommand(
		migrateCmd(),
		resetCmd(),
		seedCmd(),
		generateCmd(),
		statsCmd(),
		historyCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func openDB() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return database.Initialize(cfg.Database)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables, the order_summary view and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)
			return database.RunMigrations(db)
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop every table and the view, then recreate them empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.DropAll(db); err != nil {
				return err
			}
			return database.RunMigrations(db)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert representative sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)
			return database.Seed(db)
		},
	}
}

func generateCmd() *cobra.Command {
	var customers, orders int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate bulk synthetic customers and orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			gen := database.NewDataGenerator(db)
			if customers > 0 {
				if err := gen.GenerateCustomers(customers); err != nil {
					return err
				}
			}
			if orders > 0 {
				if err := gen.GenerateOrders(orders); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&customers, "customers", 0, "number of customers to generate")
	cmd.Flags().IntVar(&orders, "orders", 0, "number of orders to generate")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print row counts per table",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			reports := services.NewReportService(mysql.NewReportRepository(db))
			stats, err := reports.Stats()
			if err != nil {
				return err
			}

			fmt.Printf("categories:  %d\n", stats.Categories)
			fmt.Printf("customers:   %d\n", stats.Customers)
			fmt.Printf("products:    %d\n", stats.Products)
			fmt.Printf("orders:      %d\n", stats.Orders)
			fmt.Printf("order items: %d\n", stats.OrderItems)
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <customer-id>",
		Short: "Print a customer's order history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			reports := services.NewReportService(mysql.NewReportRepository(db))
			history, err := reports.CustomerOrderHistory(uint(id))
			if err != nil {
				return err
			}
			if len(history) == 0 {
				logrus.Info("No orders found")
				return nil
			}

			for _, entry := range history {
				fmt.Printf("#%d  %s  %-10s  $%s  (%d items)\n",
					entry.OrderID,
					entry.OrderDate.Format("2006-01-02"),
					entry.Status,
					entry.TotalAmount.StringFixed(2),
					entry.TotalItems,
				)
			}
			return nil
		},
	}
}
