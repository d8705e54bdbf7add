// Package date formats dates for a locale.
//
// Dates follow the CLDR patterns of the locale's region for the four styles (Full,
// Long, Medium, Short), read from github.com/go-playground/locales. Clock times and
// custom layouts are printed with translated names by github.com/goodsign/monday:
//
//	f := date.NewFormatter(cfg)
//	s, err := f.Intl(t, date.WithLocale("es-ES"), date.WithDateStyle(date.Full))
//	// "lunes, 1 de enero de 2024"
package date
