package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"certgen/internal"
	"certgen/internal/certificate"
	"certgen/internal/config"
	"certgen/internal/connectors"
	"certgen/internal/connectors/resttable"
	sheetsconnector "certgen/internal/connectors/sheets"
	"certgen/internal/pipeline"
	"certgen/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "generate":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "participant list (.xlsx or .csv)")
		template := fs.String("template", cfg.TemplatePath, "certificate template (.pdf)")
		out := fs.String("out", "", "output archive path")
		name := fs.String("name", "", "submitter name")
		school := fs.String("school", "", "submitter school name")
		schoolNumber := fs.String("school-number", "", "submitter school number")
		contact := fs.String("contact", "", "submitter contact number")
		ic := fs.String("ic", "", "submitter IC number")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		if strings.TrimSpace(*out) == "" {
			*out = filepath.Join(cfg.OutputDir, certificate.ArchiveName)
		}

		store, err := makeStore(cfg)
		must(err)
		submit := connectors.NewSubmitService(db, store, cfg.SubmitStrict)
		renderer := certificate.NewPDFRenderer(cfg.FontPath, certificate.DefaultStyle())
		svc := pipeline.NewService(db, cfg, submit, renderer)

		session := pipeline.NewSession()
		session.Record = internal.SubmissionRecord{
			Name:          *name,
			SchoolName:    *school,
			SchoolNumber:  *schoolNumber,
			ContactNumber: *contact,
			ICNumber:      *ic,
		}

		result, err := svc.Run(context.Background(), pipeline.RunInput{
			DatasetPath:  *input,
			TemplatePath: *template,
			Session:      session,
		})
		must(err)

		if result.Submission != nil && !result.Submission.RemoteOK {
			fmt.Printf("warning: submission record not stored remotely: %v\n", result.Submission.RemoteErr)
		}
		for _, rowErr := range result.RowErrors {
			fmt.Printf("row %d (%s): %s\n", rowErr.RowIndex, rowErr.Name, rowErr.Message)
		}

		must(os.MkdirAll(filepath.Dir(*out), 0o755))
		must(os.WriteFile(*out, result.ArchiveBytes, 0o644))
		fmt.Printf("generation complete: %d successful, %d failed, archive=%s\n", result.SuccessCount, result.FailCount, *out)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		must(pipeline.ExportDB(db, *out))
		fmt.Printf("exported database to %s\n", *out)
	case "submissions:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max submissions")
		_ = fs.Parse(os.Args[2:])
		rows, err := db.ListSubmissions(*limit)
		must(err)
		for _, row := range rows {
			remote := "remote=ok"
			if !row.RemoteOK {
				remote = "remote=failed"
			}
			fmt.Printf("%d\t%s\t%s\t%s\t%s\n", row.ID, row.Timestamp, row.Name, row.SchoolName, remote)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func makeStore(cfg config.Config) (connectors.SubmissionStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.SubmitStore)) {
	case "resttable":
		return resttable.NewClient(cfg), nil
	case "sheets":
		return sheetsconnector.NewConnector(cfg)
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported submission store: %s", cfg.SubmitStore)
	}
}

func usage() {
	fmt.Println("usage: certgen <command>")
	fmt.Println("commands:")
	fmt.Println("  generate --input=participants.xlsx [--template=...pdf] [--out=...zip]")
	fmt.Println("           --name=... --school=... --school-number=... --contact=... --ic=...")
	fmt.Println("  export:xlsx --out=./out/certificates_export.xlsx")
	fmt.Println("  submissions:list [--limit=20]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
