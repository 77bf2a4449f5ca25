package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Victor-armando18/cafe-pricing/pkg/pricing"
	"go.uber.org/zap"
)

func main() {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("   CAFE PRICING CLI - DIAGNOSTIC TOOL")
	fmt.Println(strings.Repeat("=", 60))

	logger := newLogger(zap.NewDevelopment)
	defer logger.Sync()

	ctx := context.Background()
	eng, err := pricing.New(ctx, pricing.WithLogger(logger))
	if err != nil {
		fmt.Printf("\nERRO CRÍTICO: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n[1. ITENS AVULSOS]")
	printDrink(ctx, eng, pricing.NewDrink(pricing.Hot, pricing.S, pricing.WithWhipCream(true)))
	printDrink(ctx, eng, pricing.NewDrink(pricing.MilkTea, pricing.S, pricing.WithWhipCream(true), pricing.WithMilk(pricing.Almond)))
	printDrink(ctx, eng, pricing.NewDrink(pricing.Hot, pricing.S, pricing.WithWhipCream(true), pricing.WithChocolate(3)))
	if price, err := eng.PriceBreakfast(ctx, pricing.NewBreakfast(pricing.Egg, pricing.Butter)); err == nil {
		fmt.Printf("   %-60s %s\n", pricing.NewBreakfast(pricing.Egg, pricing.Butter), pricing.FormatPrice(price))
	}
	printDrink(ctx, eng, pricing.NewDrink(pricing.Hot, pricing.S, pricing.WithChocolate(7)))

	quote, err := eng.QuoteOrder(ctx, []pricing.OrderItem{
		pricing.NewDrink(pricing.Hot, pricing.S, pricing.WithChocolate(4)),
		pricing.NewDrink(pricing.MilkTea, pricing.M, pricing.WithMilk(pricing.Almond)),
		pricing.NewBreakfast(pricing.Egg, pricing.Butter),
	})
	if err != nil {
		fmt.Printf("\nERRO CRÍTICO: %v\n", err)
		os.Exit(1)
	}
	displayQuote(quote)
}

// newLogger falls back to a no-op logger when build fails; the printout
// does not depend on the logs.
func newLogger(build func(...zap.Option) (*zap.Logger, error)) *zap.Logger {
	logger, err := build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "AVISO: logger indisponível: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

func printDrink(ctx context.Context, eng pricing.Engine, d pricing.Drink) {
	price, err := eng.PriceDrink(ctx, d)
	var ve *pricing.ValidationError
	switch {
	case errors.As(err, &ve):
		fmt.Printf("   %-60s BLOQUEIO [%s]: %s\n", d, ve.RuleID, ve.Reason)
	case err != nil:
		fmt.Printf("   %-60s ERRO: %v\n", d, err)
	default:
		fmt.Printf("   %-60s %s\n", d, pricing.FormatPrice(price))
	}
}

func displayQuote(q *pricing.OrderQuote) {
	fmt.Println("\n[2. LOG DE EXECUÇÃO]")
	for _, step := range q.ExecutionLog {
		fmt.Printf("   [%-9s] %s\n", strings.ToUpper(string(step.Phase)), step.Message)
	}

	fmt.Println("\n[3. RESUMO DO PEDIDO]")
	for _, l := range q.Lines {
		fmt.Printf("   #%d %-56s %s\n", l.Index, l.Item, l.Price)
	}
	fmt.Printf("   Subtotal:    %s\n", q.Subtotal)
	fmt.Printf("   Imposto:     %s (%s)\n", q.Tax, q.TaxRate)
	fmt.Printf("   %s\n", pricing.FormatPrice(q.Total))
	fmt.Printf("   Versão Rule: %s\n", q.RulesVersion)

	fmt.Println(strings.Repeat("=", 60))
}
