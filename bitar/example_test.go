//go:build unit

package bitar_test

import (
	"context"
	"fmt"

	"github.com/LerianStudio/lib-bitar/bitar"
	"github.com/LerianStudio/lib-bitar/bitar/config"
	"github.com/LerianStudio/lib-bitar/bitar/num"
)

func ExampleNew() {
	locale := "pt-BR"
	code := "BRL"

	b, err := bitar.New(bitar.WithConfig(config.Patch{
		Locale: &locale,
		Num:    &config.NumPatch{Currency: &config.FormatPatch{Currency: &code}},
	}))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(b.Num().Intl(1234.5))
	fmt.Println(b.Num().Currency(10, num.WithSpaced(false)))

	// Output:
	// 1.234,5
	// R$10,00
}

func ExampleContextWithHeaderID() {
	ctx := bitar.ContextWithHeaderID(context.Background(), "req-42")

	fmt.Println(bitar.NewHeaderIDFromContext(ctx))

	// Output:
	// req-42
}
