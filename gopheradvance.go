// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/environment"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/bus"
	"github.com/jetsetilly/gopheradvance/hardware/memory/cartridge"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept/cheat"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept/script"
	"github.com/jetsetilly/gopheradvance/hardware/memory/intercept/watch"
	"github.com/jetsetilly/gopheradvance/hardware/memory/memorymap"
	"github.com/jetsetilly/gopheradvance/hardware/preferences"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/modalflag"
	"github.com/jetsetilly/gopheradvance/prefs"
	"github.com/jetsetilly/gopheradvance/recorder"
	"github.com/jetsetilly/gopheradvance/statsview"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// the recorder sees every access before any other handler
const priorityRecorder = math.MaxInt32

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout, afero.NewOsFs())
	stop()
	os.Exit(exitVal)
}

// the state shared by all modes
type launcher struct {
	ctx    context.Context
	md     *modalflag.Modes
	output io.Writer
	fs     afero.Fs
	prefs  *preferences.Preferences
	log    bool
}

// launch parses the arguments and runs the selected mode. files are read and
// written through the supplied file system
func launch(ctx context.Context, args []string, output io.Writer, fs afero.Fs) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("HEADER", "MAP", "PEEK", "TRACE", "BENCH")
	log := md.AddBool("log", false, "echo log to stdout")
	overrides := md.AddString("prefs", "", "override preferences (key::value; key::value)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	l := &launcher{
		ctx:    ctx,
		md:     md,
		output: output,
		fs:     fs,
		log:    *log,
	}

	l.prefs, err = preferences.NewPreferences(l.fs)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitModeError
	}

	if *overrides != "" {
		unused, err := l.prefs.Override(prefs.ParseOverrides(*overrides))
		if err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return exitParseError
		}
		if len(unused) > 0 {
			fmt.Fprintf(output, "* unknown preferences: %s\n", unused)
		}
	}

	switch md.Mode() {
	case "HEADER":
		err = l.header()
	case "MAP":
		err = l.memoryMap()
	case "PEEK":
		err = l.peek()
	case "TRACE":
		err = l.trace()
	case "BENCH":
		err = l.bench()
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// newEnvironment creates an environment with the launcher's preferences. the
// log is echoed to the output if requested
func (l *launcher) newEnvironment(label environment.Label) (*environment.Environment, error) {
	env, err := environment.NewEnvironment(label, l.prefs)
	if err != nil {
		return nil, err
	}
	if l.log {
		if f, ok := l.output.(*os.File); ok && isTerminal(f) {
			env.Log.SetEcho(logger.NewColorizer(l.output))
		} else {
			env.Log.SetEcho(l.output)
		}
	}
	return env, nil
}

func (l *launcher) loadCartridge(filename string) (*cartridge.Cartridge, error) {
	cl := cartridgeloader.NewLoader(filename)
	if err := cl.Load(l.fs); err != nil {
		return nil, err
	}
	return cartridge.NewCartridge(cl.Name, cl.Data)
}

func (l *launcher) loadBIOS(filename string) ([]byte, error) {
	if filename == "" {
		return nil, nil
	}
	bios, err := afero.ReadFile(l.fs, filename)
	if err != nil {
		return nil, fmt.Errorf("bios: %w", err)
	}
	return bios, nil
}

// newBus creates a GBA bus. the cartridge filename can be empty
func (l *launcher) newBus(env *environment.Environment, biosFile string, cartFile string) (*memory.Bus, *cartridge.Cartridge, error) {
	bios, err := l.loadBIOS(biosFile)
	if err != nil {
		return nil, nil, err
	}

	var cart *cartridge.Cartridge
	if cartFile != "" {
		cart, err = l.loadCartridge(cartFile)
		if err != nil {
			return nil, nil, err
		}
	}

	b, err := memory.NewGBA(env, bios, cart)
	if err != nil {
		return nil, nil, err
	}

	return b, cart, nil
}

func (l *launcher) header() error {
	l.md.NewMode()

	p, err := l.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(l.md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM required for %s mode", l.md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", l.md)
	}

	cart, err := l.loadCartridge(l.md.GetArg(0))
	if err != nil {
		return err
	}

	h := cart.Header
	fmt.Fprintf(l.output, "file:       %s (%d bytes)\n", cart.Filename, len(cart.Data))
	fmt.Fprintf(l.output, "title:      %s\n", h.Title)
	fmt.Fprintf(l.output, "game code:  %s\n", h.GameCode)
	fmt.Fprintf(l.output, "maker:      %s\n", h.Maker)
	fmt.Fprintf(l.output, "version:    %d\n", h.Version)
	fmt.Fprintf(l.output, "entry:      %08x\n", h.Entry)
	fmt.Fprintf(l.output, "complement: %02x (ok: %v)\n", h.Complement, h.ComplementOK)
	fmt.Fprintf(l.output, "backup:     %s (%d bytes)\n", cart.Backup, cart.SaveSize())
	fmt.Fprintf(l.output, "sha1:       %s\n", cart.SHA1)
	fmt.Fprintf(l.output, "crc32:      %08x\n", cart.CRC32)
	if cart.HeaderErr != nil {
		fmt.Fprintf(l.output, "* %v\n", cart.HeaderErr)
	}

	return nil
}

// a view of a region suitable for memviz. the storage data is not included
type regionView struct {
	Label      string
	Area       string
	Origin     string
	Memtop     string
	Width      string
	Timing     string
	Mutability string
	Mirror     string
	Storage    *storageView
}

type storageView struct {
	Label string
	Size  int
}

func (l *launcher) memoryMap() error {
	l.md.NewMode()
	bios := l.md.AddString("bios", "", "BIOS file")
	viz := l.md.AddString("memviz", "", "write graphviz rendering of the address space to file")
	l.md.AdditionalHelp("prints the address map with the ROM (optional) attached")

	p, err := l.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(l.md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", l.md)
	}

	env, err := l.newEnvironment(environment.MainEmulation)
	if err != nil {
		return err
	}

	b, _, err := l.newBus(env, *bios, l.md.GetArg(0))
	if err != nil {
		return err
	}

	io.WriteString(l.output, b.String())
	for _, i := range b.Intercepts.List() {
		fmt.Fprintf(l.output, "%s\n", i)
	}
	fmt.Fprintf(l.output, "%s\n", b.WaitControl())

	if *viz != "" {
		// regions that share storage share a storage view
		storage := make(map[*memorymap.Storage]*storageView)
		var view []*regionView
		for _, r := range b.Space.Regions() {
			sv, ok := storage[r.Storage]
			if !ok {
				sv = &storageView{Label: r.Storage.Label, Size: len(r.Storage.Data)}
				storage[r.Storage] = sv
			}
			view = append(view, &regionView{
				Label:      r.Label,
				Area:       r.Area.String(),
				Origin:     fmt.Sprintf("%08x", r.Origin),
				Memtop:     fmt.Sprintf("%08x", r.Memtop()),
				Width:      r.Width.String(),
				Timing:     r.Timing.String(),
				Mutability: r.Mutability.String(),
				Mirror:     fmt.Sprintf("%#x", r.Mirror),
				Storage:    sv,
			})
		}

		f, err := l.fs.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, &view)
	}

	return nil
}

func parseAddress(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("not an address: %s", s)
	}
	return uint32(v), nil
}

func (l *launcher) peek() error {
	l.md.NewMode()
	bios := l.md.AddString("bios", "", "BIOS file")

	p, err := l.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(l.md.RemainingArgs()) < 2 {
		return fmt.Errorf("ROM and at least one address required for %s mode", l.md)
	}

	env, err := l.newEnvironment(environment.MainEmulation)
	if err != nil {
		return err
	}

	b, _, err := l.newBus(env, *bios, l.md.GetArg(0))
	if err != nil {
		return err
	}

	for _, s := range l.md.RemainingArgs()[1:] {
		a, err := parseAddress(s)
		if err != nil {
			return err
		}
		var cycles int
		v := b.Load32(nil, a, &cycles)
		ai := b.AddressInfo(a)
		fmt.Fprintf(l.output, "%08x: %08x (%s) %d cycles\n", a, v, ai.Region, cycles)
	}

	b.FlushLog()

	return nil
}

func (l *launcher) trace() error {
	l.md.NewMode()
	bios := l.md.AddString("bios", "", "BIOS file")
	scripts := l.md.AddStrings("script", "lua script to use as an intercept handler")
	watches := l.md.AddStrings("watch", "watch accesses: [READ|WRITE] address[-memtop] [value]")
	cheats := l.md.AddStrings("cheat", "cheat code: AAAAAAAA:VVVVVVVV")
	record := l.md.AddString("record", "", "record accesses to transcript file")
	quiet := l.md.AddBool("quiet", false, "only print the total")

	p, err := l.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(l.md.RemainingArgs()) != 2 {
		return fmt.Errorf("ROM and transcript required for %s mode", l.md)
	}

	env, err := l.newEnvironment(environment.MainEmulation)
	if err != nil {
		return err
	}

	b, cart, err := l.newBus(env, *bios, l.md.GetArg(0))
	if err != nil {
		return err
	}

	plb, err := recorder.NewPlayback(l.fs, l.md.GetArg(1))
	if err != nil {
		return err
	}
	if err := plb.Validate(cart); err != nil {
		return err
	}

	for _, s := range *scripts {
		sc, err := script.NewFromFile(env, l.fs, s)
		if err != nil {
			return err
		}
		defer sc.Close()
		b.Intercepts.Register(sc.Range(), sc.Priority(), sc)
	}

	var ws []*watch.Watch
	for _, s := range *watches {
		wtr, err := watch.Parse(s)
		if err != nil {
			return err
		}
		w := watch.New(env, wtr)
		b.Intercepts.Register(w.Range(), memory.PriorityWatch, w)
		ws = append(ws, w)
	}

	if len(*cheats) > 0 {
		var codes []cheat.Code
		for _, s := range *cheats {
			c, err := cheat.Parse(s)
			if err != nil {
				return err
			}
			codes = append(codes, c)
		}
		ch := cheat.New(b, codes...)
		b.Intercepts.Register(ch.Range(), 0, ch)
	}

	if *record != "" {
		f, err := l.fs.Create(*record)
		if err != nil {
			return err
		}
		defer f.Close()
		rec, err := recorder.NewRecorder(f, cart)
		if err != nil {
			return err
		}
		b.Intercepts.Register(intercept.Range{Origin: 0, Memtop: math.MaxUint32}, priorityRecorder, rec)
	}

	total := plb.Play(b, func(r recorder.Result) {
		if !*quiet {
			fmt.Fprintln(l.output, r)
		}
	})

	b.FlushLog()

	fmt.Fprintf(l.output, "total: %d cycles\n", total)
	fmt.Fprintf(l.output, "%s\n", b.Stats())
	for _, w := range ws {
		fmt.Fprintf(l.output, "%s: %d hits\n", w, len(w.Hits()))
	}

	return nil
}

// the result of a single bench instance
type benchResult struct {
	accesses int
	cycles   int
	duration time.Duration
}

func (l *launcher) bench() error {
	l.md.NewMode()
	bios := l.md.AddString("bios", "", "BIOS file")
	instances := l.md.AddInt("instances", 4, "number of bus instances to run concurrently")
	accesses := l.md.AddInt("accesses", 10000000, "number of accesses per instance")
	stats := l.md.AddBool("statsview", false, "run stats server")

	p, err := l.md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(l.md.RemainingArgs()) != 1 {
		return fmt.Errorf("ROM required for %s mode", l.md)
	}

	if *instances < 1 {
		return fmt.Errorf("at least one instance required")
	}

	biosData, err := l.loadBIOS(*bios)
	if err != nil {
		return err
	}

	cart, err := l.loadCartridge(l.md.GetArg(0))
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(l.ctx, l.output)
	}

	results := make([]benchResult, *instances)

	g, ctx := errgroup.WithContext(l.ctx)
	for i := 0; i < *instances; i++ {
		i := i
		g.Go(func() error {
			env, err := l.newEnvironment(environment.Label(fmt.Sprintf("bench%d", i)))
			if err != nil {
				return err
			}

			// each instance has its own bus. the cartridge data is copied
			// into the ROM storage of each bus
			b, err := memory.NewGBA(env, biosData, cart)
			if err != nil {
				return err
			}

			results[i], err = runBench(ctx, b, uint32(len(cart.Data)), *accesses)
			b.FlushLog()
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var total benchResult
	for i, r := range results {
		fmt.Fprintf(l.output, "instance %d: %d accesses, %d cycles, %.2f Maccesses/s\n",
			i, r.accesses, r.cycles, float64(r.accesses)/r.duration.Seconds()/1e6)
		total.accesses += r.accesses
		total.cycles += r.cycles
		total.duration = max(total.duration, r.duration)
	}
	fmt.Fprintf(l.output, "total: %d accesses, %d cycles in %s\n", total.accesses, total.cycles, total.duration)

	return nil
}

// how often the bench checks for cancellation
const benchCheck = 4096

// runBench makes a mix of sequential ROM fetches and IWRAM loads and stores,
// breaking the sequence as a branch would
func runBench(ctx context.Context, b *memory.Bus, romSize uint32, accesses int) (benchResult, error) {
	cpu := bus.Snapshot{}
	var r benchResult

	start := time.Now()
	pc := memorymap.OriginWS0

	for r.accesses < accesses {
		if r.accesses%benchCheck == 0 {
			if err := ctx.Err(); err != nil {
				if errors.Is(err, context.Canceled) {
					break
				}
				return r, err
			}
		}

		cpu.ProgramCounter = pc
		cpu.Prefetch = b.Load32(&cpu, pc, &r.cycles)
		pc += 4

		switch r.accesses % 16 {
		case 7:
			b.Store32(&cpu, memorymap.OriginIWRAM+(pc&0x7ffc), cpu.Prefetch, &r.cycles)
			r.accesses++
		case 15:
			b.Load32(&cpu, memorymap.OriginIWRAM+(pc&0x7ffc), &r.cycles)
			r.accesses++
			b.BreakSequence()
		}

		if pc-memorymap.OriginWS0 >= romSize {
			pc = memorymap.OriginWS0
		}

		r.accesses++
	}

	r.duration = time.Since(start)
	return r, nil
}
