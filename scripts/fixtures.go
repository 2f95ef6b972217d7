// Fixture script for manual runs. Fills a directory with files named in
// Ukrainian and Russian so you can try the renamer on realistic input.
//
// Usage:
//
//	go run scripts/fixtures.go
//	go run scripts/fixtures.go --dir /tmp/cyrillic-fixtures --lang ru
//	go run scripts/fixtures.go --clear  (remove the directory first)
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"
)

type sample struct {
	Name     string
	Language string
}

var samples = []sample{
	{"Мій файл.txt", "ua"},
	{"Щастя.docx", "ua"},
	{"ЩоДня.md", "ua"},
	{"Приєднання до мережі.pdf", "ua"},
	{"звіт.2023.xlsx", "ua"},
	{"фото_2023-01-01.jpeg", "ua"},
	{"Згода на обробку.pdf", "ua"},
	{"Соломʼя.png", "ua"},
	{"сім'я.jpg", "ua"},
	{"Житомир — Львів.txt", "ua"},
	{"Ґанок.heic", "ua"},
	{"Їжак у тумані.mp4", "ua"},
	{"сертификат-Для-ВПО.pdf", "ru"},
	{"мой отчёт.odt", "ru"},
	{"Объявление.txt", "ru"},
	{"Жизнь и судьба.epub", "ru"},
	{"Щи по-домашнему.md", "ru"},
	{"ёлка.png", "ru"},
	{"Эхо.mp3", "ru"},
	{"Юля.jpg", "ru"},
	{"photo.jpg", ""},
	{"README", ""},
}

func main() {
	fs := ff.NewFlagSet("fixtures")
	var (
		dir   = fs.StringLong("dir", filepath.Join(os.TempDir(), "cyrillic-fixtures"), "directory to fill")
		lang  = fs.StringLong("lang", "", "only create names in this language (ua or ru)")
		clear = fs.BoolLong("clear", "remove the directory before creating fixtures")
	)
	if err := ff.Parse(fs, os.Args[1:]); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		log.Fatalf("parsing flags: %v", err)
	}

	if *clear {
		log.Printf("Removing %s...", *dir)
		if err := os.RemoveAll(*dir); err != nil {
			log.Fatalf("removing %s: %v", *dir, err)
		}
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("creating %s: %v", *dir, err)
	}

	selected := lo.Filter(samples, func(s sample, _ int) bool {
		return *lang == "" || s.Language == "" || s.Language == *lang
	})

	log.Printf("Creating %d files...", len(selected))
	for _, s := range selected {
		path := filepath.Join(*dir, s.Name)
		if err := os.WriteFile(path, []byte(s.Name+"\n"), 0o644); err != nil {
			log.Printf("  WARN: %s: %v", s.Name, err)
			continue
		}
		// Spread modification times so copies can be checked for preserved mtimes.
		hoursAgo := rand.Intn(720)
		mtime := time.Now().Add(-time.Duration(hoursAgo) * time.Hour)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			log.Printf("  WARN: %s: %v", s.Name, err)
		}
		fmt.Printf("  ✓ %s (%s ago)\n", s.Name, time.Duration(hoursAgo)*time.Hour)
	}

	log.Println("")
	log.Println("To rename them:")
	log.Printf("  go run ./cmd/renamer --path %s --lang ua --standard official --dry-run", *dir)
}
