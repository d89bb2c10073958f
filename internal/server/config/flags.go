package config

import (
	"flag"
	"fmt"
	"strings"
)

// Флаги командной строки, перекрывают окружение:
//
//	-a string     адрес и порт HTTP сервера (например, ":3000")
//	-d string     путь к файлу базы данных SQLite
//	-s string     секрет подписи токенов
//	-c string     секрет подписи session cookie
//	-t duration   срок жизни токенов (например, "1h")
//	-e duration   срок жизни сессий (например, "24h")
var knownFlags = []string{"-a", "-d", "-s", "-c", "-t", "-e"}

// filterArgs оставляет из args только флаги, которые обрабатывает этот
// пакет. Так флаги других компонентов (-version в main, флаги go test)
// не ломают разбор
func filterArgs(args []string, known []string) []string {
	knownSet := make(map[string]bool, len(known))
	for _, f := range known {
		knownSet[f] = true
	}

	var filtered []string
	for i := 0; i < len(args); i++ {
		arg := args[i]

		name := arg
		hasValue := false
		if idx := strings.Index(arg, "="); idx >= 0 {
			name = arg[:idx]
			hasValue = true
		}

		if !knownSet[name] {
			continue
		}

		filtered = append(filtered, arg)
		// Форма "-a value": значение идет следующим аргументом
		if !hasValue && i+1 < len(args) {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// parseFlags перекрывает поля Config значениями флагов командной строки.
// Текущие значения полей служат default'ами, поэтому незаданные флаги
// ничего не меняют
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("authd", flag.ContinueOnError)

	fs.StringVar(&c.Address, "a", c.Address, "address and port to run server")
	fs.StringVar(&c.DatabasePath, "d", c.DatabasePath, "path to SQLite database file")
	fs.StringVar(&c.TokenSecret, "s", c.TokenSecret, "token signing secret")
	fs.StringVar(&c.SessionSecret, "c", c.SessionSecret, "session cookie secret")
	fs.DurationVar(&c.TokenTTL, "t", c.TokenTTL, "token time-to-live")
	fs.DurationVar(&c.SessionTTL, "e", c.SessionTTL, "session time-to-live")

	if err := fs.Parse(filterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	return nil
}
