package main

import (
	"clipshare/internal/adapters/media/cloudinary"
	"clipshare/internal/client/api"
	"clipshare/internal/client/gallery"
	"clipshare/internal/client/platform"
	"clipshare/internal/client/social"
	"clipshare/internal/client/upload"
	"clipshare/internal/config"
	"clipshare/internal/core/domain"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/term"
)

const usage = `usage: mediactl <command> [flags]

commands:
  videos                          list the gallery
  download -id <publicId>         save a video's full resolution rendition
  upload -file <path> -title <t>  upload a video
  social -file <path> -preset <p> upload an image and save its social crop
  presets                         list the social presets
`

type app struct {
	cfg    *config.ClientConfig
	client *api.Client
	urls   cloudinary.URLBuilder
	saver  *platform.DirSaver
	logger *slog.Logger
	out    io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := config.LoadDotEnv(); err != nil {
		logger.Error("failed to read .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.SessionToken == "" && needsSession(os.Args[1]) && term.IsTerminal(int(os.Stdin.Fd())) {
		cfg.SessionToken, err = promptToken()
		if err != nil {
			logger.Error("failed to read session token", "error", err)
			os.Exit(1)
		}
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	a := &app{
		cfg:    cfg,
		client: api.NewClient(cfg.ServerURL, cfg.SessionToken, httpClient),
		urls:   cloudinary.NewURLBuilder(cfg.DeliveryBaseURL, cfg.CloudName),
		saver:  platform.NewDirSaver(cfg.DownloadDir, httpClient),
		logger: logger,
		out:    os.Stdout,
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		var formErr *upload.Error
		if errors.As(err, &formErr) {
			fmt.Fprintln(os.Stderr, formErr.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func needsSession(command string) bool {
	return command == "upload" || command == "social"
}

func promptToken() (string, error) {
	fmt.Fprint(os.Stderr, "Session token: ")
	token, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(token)), nil
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "videos":
		return a.videos(ctx, args)
	case "download":
		return a.download(ctx, args)
	case "upload":
		return a.upload(ctx, args)
	case "social":
		return a.social(ctx, args)
	case "presets":
		return a.presets()
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func (a *app) videos(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("videos", flag.ContinueOnError)
	urls := fs.Bool("urls", false, "print thumbnail and preview URLs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g := gallery.New(a.client, a.urls, a.saver, a.logger)
	if err := g.Load(ctx); err != nil {
		return errors.New(g.Message())
	}
	if placeholder := g.Placeholder(); placeholder != "" {
		fmt.Fprintln(a.out, placeholder)
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PUBLIC ID\tTITLE\tDURATION\tORIGINAL\tCOMPRESSED\tSAVED\tUPLOADED")
	for _, card := range g.Cards() {
		d := card.Details(now)
		compression := d.Compression
		if compression == "" {
			compression = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			card.Video.PublicID, d.Title, d.Duration, d.OriginalSize, d.CompressedSize, compression, d.Uploaded)
		if *urls {
			fmt.Fprintf(w, "\tthumbnail\t%s\n", card.ThumbnailURL())
			fmt.Fprintf(w, "\tpreview\t%s\n", card.PreviewURL())
		}
	}
	return w.Flush()
}

func (a *app) download(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("download", flag.ContinueOnError)
	publicID := fs.String("id", "", "publicId of the video")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *publicID == "" {
		return errors.New("-id is required")
	}

	g := gallery.New(a.client, a.urls, a.saver, a.logger)
	if err := g.Load(ctx); err != nil {
		return errors.New(g.Message())
	}
	for _, card := range g.Cards() {
		if card.Video.PublicID == *publicID {
			if err := g.Download(ctx, card); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "saved %s\n", filepath.Join(a.cfg.DownloadDir, card.Video.Title+".mp4"))
			return nil
		}
	}
	return fmt.Errorf("no video with publicId %q", *publicID)
}

func (a *app) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	path := fs.String("file", "", "video file")
	title := fs.String("title", "", "video title")
	description := fs.String("description", "", "video description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := upload.Form{Title: *title, Description: *description}
	if *path != "" {
		f, err := os.Open(*path)
		if err != nil {
			return err
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return err
		}
		form.File = &upload.File{Name: filepath.Base(*path), Size: info.Size(), Reader: f}
	}

	submitter := upload.NewSubmitter(a.client, a.cfg.VideoMaxSize, a.logger)
	video, err := submitter.Submit(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "uploaded %s (%s)\n", video.PublicID, video.ID)
	return nil
}

func (a *app) social(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("social", flag.ContinueOnError)
	path := fs.String("file", "", "image file")
	preset := fs.String("preset", "", "social preset name, see mediactl presets")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return errors.New("-file is required")
	}

	flow := social.New(a.client, a.client, a.urls, a.saver, a.logger)
	if *preset != "" {
		if err := flow.SelectPreset(*preset); err != nil {
			return err
		}
	}

	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := flow.Upload(ctx, filepath.Base(*path), f); err != nil {
		return errors.New(flow.Message())
	}
	if err := flow.Render(ctx); err != nil {
		return err
	}
	if err := flow.Download(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "saved %s\n", filepath.Join(a.cfg.DownloadDir, flow.Format().FileName()))
	return nil
}

func (a *app) presets() error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tASPECT")
	for _, f := range domain.SocialFormats() {
		fmt.Fprintf(w, "%s\t%dx%d\t%s\n", f.Name, f.Width, f.Height, f.AspectRatio)
	}
	return w.Flush()
}
