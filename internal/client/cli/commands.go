package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdrop/internal/client/client"
	"github.com/dmitrijs2005/gophdrop/internal/client/models"
	"github.com/dmitrijs2005/gophdrop/internal/filex"
)

var ErrUsage = errors.New("invalid arguments")

// downloadDir receives downloads when no -out path is given.
const downloadDir = "downloads"

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"ping":          {"ping", (*App).ping},
	"request":       {"request <file-name>", (*App).request},
	"resolve":       {"resolve <alias>", (*App).resolve},
	"upload":        {"upload [-y] [-type t] -in <file> [-owner-key <file>] <alias>", (*App).upload},
	"upload-atomic": {"upload-atomic [-type t] -in <file> [-owner-key <file>] <file-name>", (*App).uploadAtomic},
	"download":      {"download [-out <file>] [-key-out <file>] <file-id>", (*App).download},
	"share":         {"share [-wrapped-key <file>] <file-id> <principal>", (*App).share},
	"requests":      {"requests", (*App).requests},
	"shared":        {"shared", (*App).shared},
	"whoami":        {"whoami", (*App).whoAmI},
	"set-profile":   {"set-profile [-first n] [-last n] [-public-key <file>]", (*App).setProfile},
	"users":         {"users", (*App).users},
}

// Exec runs one command. args[0] is the command name.
func (a *App) Exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if args[0] == "help" {
		a.help()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	if err := cmd.run(a, ctx, args[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w; usage: %s", err, cmd.usage)
		}
		return err
	}
	return nil
}

func (a *App) help() {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "Available commands:")
	for _, n := range names {
		fmt.Fprintf(a.out, "  %s\n", commands[n].usage)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func parseFileID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad file id %q", ErrUsage, s)
	}
	return id, nil
}

func (a *App) ping(ctx context.Context, args []string) error {
	c, err := a.client(false)
	if err != nil {
		return err
	}
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) request(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	c, err := a.client(true)
	if err != nil {
		return err
	}
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	r, err := c.RequestFile(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "file id: %d\nalias:   %s\n", r.FileID, r.Alias)
	return nil
}

func (a *App) resolve(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	info, err := a.resolveAlias(ctx, args[0])
	if err != nil {
		return err
	}
	a.printAliasInfo(info)
	return nil
}

func (a *App) resolveAlias(ctx context.Context, alias string) (*models.AliasInfo, error) {
	c, err := a.client(false)
	if err != nil {
		return nil, err
	}
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	return c.ResolveAlias(ctx, alias)
}

func (a *App) printAliasInfo(info *models.AliasInfo) {
	fmt.Fprintf(a.out, "file id:      %d\n", info.FileID)
	fmt.Fprintf(a.out, "file name:    %s\n", info.FileName)
	fmt.Fprintf(a.out, "requested by: %s%s\n", info.Requester, displayName(info.Profile))
	fmt.Fprintf(a.out, "requested at: %s\n", info.RequestedAt.Format(time.RFC3339))
	if info.UploadedAt != nil {
		fmt.Fprintf(a.out, "uploaded at:  %s\n", info.UploadedAt.Format(time.RFC3339))
	} else {
		fmt.Fprintln(a.out, "status:       waiting for upload")
	}
}

func displayName(p models.Profile) string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return ""
	}
	return " (" + name + ")"
}

type uploadFlags struct {
	fileType string
	in       string
	ownerKey string
}

func (u *uploadFlags) bind(fs *flag.FlagSet) {
	fs.StringVar(&u.fileType, "type", "", "file type")
	fs.StringVar(&u.in, "in", "", "path of the encrypted contents")
	fs.StringVar(&u.ownerKey, "owner-key", "", "path of the owner's wrapped key")
}

func (u *uploadFlags) read() (contents, key []byte, err error) {
	if u.in == "" {
		return nil, nil, fmt.Errorf("%w: -in is required", ErrUsage)
	}
	if contents, err = filex.ReadOptional(u.in); err != nil {
		return nil, nil, err
	}
	if key, err = filex.ReadOptional(u.ownerKey); err != nil {
		return nil, nil, err
	}
	return contents, key, nil
}

func (a *App) upload(ctx context.Context, args []string) error {
	var uf uploadFlags
	fs := a.flagSet("upload")
	uf.bind(fs)
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 {
		return ErrUsage
	}

	contents, key, err := uf.read()
	if err != nil {
		return err
	}

	info, err := a.resolveAlias(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	a.printAliasInfo(info)

	if !*yes {
		ok, err := Confirm(a.reader, fmt.Sprintf("Upload %s for %s?", uf.in, info.Requester), a.out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "cancelled")
			return nil
		}
	}

	c, err := a.client(false)
	if err != nil {
		return err
	}
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if _, err := c.UploadFile(ctx, info.FileID, uf.fileType, contents, key); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "uploaded %d bytes\n", len(contents))
	return nil
}

func (a *App) uploadAtomic(ctx context.Context, args []string) error {
	var uf uploadFlags
	fs := a.flagSet("upload-atomic")
	uf.bind(fs)
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 {
		return ErrUsage
	}

	contents, key, err := uf.read()
	if err != nil {
		return err
	}

	c, err := a.client(true)
	if err != nil {
		return err
	}
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	id, err := c.UploadFileAtomic(ctx, fs.Arg(0), uf.fileType, contents, key)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "file id: %d\n", id)
	return nil
}

func (a *App) download(ctx context.Context, args []string) error {
	fs := a.flagSet("download")
	out := fs.String("out", "", "where to write the contents")
	keyOut := fs.String("key-out", "", "where to write the wrapped key")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 {
		return ErrUsage
	}
	id, err := parseFileID(fs.Arg(0))
	if err != nil {
		return err
	}

	c, err := a.client(true)
	if err != nil {
		return err
	}
	cctx, cancel := a.callContext(ctx)
	defer cancel()

	d, err := c.Download(cctx, id)
	if err != nil {
		return err
	}

	if *out == "" {
		dir, err := filex.EnsureSubdDir(downloadDir)
		if err != nil {
			return err
		}
		*out = filepath.Join(dir, strconv.FormatUint(id, 10))
	}
	if *keyOut == "" {
		*keyOut = *out + ".key"
	}

	if err := filex.WriteFile(*out, d.Contents); err != nil {
		return err
	}
	if err := filex.WriteFile(*keyOut, d.Key); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "type: %s\ncontents: %s\nkey: %s\n", d.FileType, *out, *keyOut)
	return nil
}

func (a *App) share(ctx context.Context, args []string) error {
	fs := a.flagSet("share")
	keyPath := fs.String("wrapped-key", "", "path of the key wrapped for the grantee")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 2 {
		return ErrUsage
	}
	id, err := parseFileID(fs.Arg(0))
	if err != nil {
		return err
	}
	key, err := filex.ReadOptional(*keyPath)
	if err != nil {
		return err
	}

	c, err := a.client(true)
	if err != nil {
		return err
	}
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := c.Share(ctx, id, fs.Arg(1), key); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "shared %d with %s\n", id, fs.Arg(1))
	return nil
}

func (a *App) requests(ctx context.Context, args []string) error {
	return a.listFiles(ctx, client.Client.ListRequests)
}

func (a *App) shared(ctx context.Context, args []string) error {
	return a.listFiles(ctx, client.Client.ListShared)
}

func (a *App) listFiles(ctx context.Context, list func(client.Client, context.Context) ([]models.FileSummary, error)) error {
	c, err := a.client(true)
	if err != nil {
		return err
	}
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	files, err := list(c, ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(a.out, "no files")
		return nil
	}
	for _, f := range files {
		fmt.Fprintf(a.out, "%d\t%s\t%s\n", f.FileID, f.FileName, fileStatus(f))
		for _, p := range f.SharedWith {
			fmt.Fprintf(a.out, "\tshared with%s\n", displayNameOr(p, "(unnamed)"))
		}
	}
	return nil
}

func fileStatus(f models.FileSummary) string {
	if f.Pending {
		return fmt.Sprintf("pending alias=%s requested=%s", f.Alias, f.RequestedAt.Format(time.RFC3339))
	}
	return "uploaded " + f.UploadedAt.Format(time.RFC3339)
}

func displayNameOr(p models.Profile, fallback string) string {
	if n := displayName(p); n != "" {
		return n
	}
	return " " + fallback
}

func (a *App) whoAmI(ctx context.Context, args []string) error {
	c, err := a.client(true)
	if err != nil {
		return err
	}
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	principal, p, err := c.WhoAmI(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Fprintf(a.out, "%s (no profile)\n", principal)
		return nil
	}
	fmt.Fprintf(a.out, "%s%s\n", principal, displayName(*p))
	return nil
}

func (a *App) setProfile(ctx context.Context, args []string) error {
	var p models.Profile
	fs := a.flagSet("set-profile")
	fs.StringVar(&p.FirstName, "first", "", "first name")
	fs.StringVar(&p.LastName, "last", "", "last name")
	keyPath := fs.String("public-key", "", "path of the public key")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
		return ErrUsage
	}

	key, err := filex.ReadOptional(*keyPath)
	if err != nil {
		return err
	}
	p.PublicKey = key

	c, err := a.client(true)
	if err != nil {
		return err
	}
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := c.SetProfile(ctx, p); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "profile saved")
	return nil
}

func (a *App) users(ctx context.Context, args []string) error {
	c, err := a.client(true)
	if err != nil {
		return err
	}
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	users, err := c.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%s%s\n", u.Principal, displayName(u.Profile))
	}
	return nil
}
