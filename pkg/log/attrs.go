package log

import (
	"log/slog"
	"strings"
)

func Kind[T ~string](kind T) slog.Attr {
	return slog.String("kind", string(kind))
}

func Size[T ~string](size T) slog.Attr {
	return slog.String("size", string(size))
}

func Topping[T ~string](topping T) slog.Attr {
	return slog.String("topping", string(topping))
}

func Toppings[T ~string](toppings []T) slog.Attr {
	names := make([]string, len(toppings))
	for i, t := range toppings {
		names[i] = string(t)
	}
	return slog.String("toppings", strings.Join(names, ","))
}

func Error(err error) slog.Attr {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return slog.String("error", msg)
}
