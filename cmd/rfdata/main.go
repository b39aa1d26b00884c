// Command rfdata is the CLI entrypoint for the signal-processing and
// demodulation core: a flat `data <cmd>` namespace dispatched by
// stdlib flag.FlagSet per subcommand, matching the teacher's flag/log
// idiom (main.go) rather than a third-party CLI framework the teacher
// itself does not use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/iceman-lab/rfsignalcore/internal/clockdetect"
	"github.com/iceman-lab/rfsignalcore/internal/demod"
	"github.com/iceman-lab/rfsignalcore/internal/mcpserver"
	"github.com/iceman-lab/rfsignalcore/internal/metrics"
	"github.com/iceman-lab/rfsignalcore/internal/probe"
	"github.com/iceman-lab/rfsignalcore/internal/rferrors"
	"github.com/iceman-lab/rfsignalcore/internal/session"
	"github.com/iceman-lab/rfsignalcore/internal/sessionconfig"
	"github.com/iceman-lab/rfsignalcore/internal/traceio"
	"github.com/iceman-lab/rfsignalcore/internal/waveform"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	global := flag.NewFlagSet("rfdata", flag.ContinueOnError)
	configPath := global.String("config", "", "path to a YAML session config file")
	debug := global.Int("debug", -1, "debug verbosity override (0,1,2)")
	metricsAddr := global.String("metrics-addr", "", "optional host:port to serve Prometheus metrics")
	if err := global.Parse(args); err != nil {
		return int(rferrors.InvArg)
	}
	rest := global.Args()
	if len(rest) == 0 {
		log.Println("usage: rfdata [--config path] [--debug N] [--metrics-addr host:port] <command> [args]")
		return int(rferrors.InvArg)
	}

	cfg, err := sessionconfig.Load(*configPath)
	if err != nil {
		log.Printf("config error: %v", err)
		return int(rferrors.InvArg)
	}
	if *debug >= 0 {
		cfg.DebugVerbosity = *debug
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}

	sess := session.New(cfg.SampleCapacity, cfg.DemodCapacity)
	sess.SetVerbosity(session.Verbosity(cfg.DebugVerbosity))
	sess.Samples.SetNoiseFloor(cfg.NoiseFloor)

	collectors := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", collectors.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Printf("metrics listener stopped: %v", err)
			}
		}()
	}

	cmd, cmdArgs := rest[0], rest[1:]
	code, err := dispatch(sess, cfg, collectors, cmd, cmdArgs)
	if err != nil {
		log.Println(err)
	}
	return int(code)
}

func dispatch(sess *session.Session, cfg sessionconfig.Config, collectors *metrics.Collectors, cmd string, args []string) (rferrors.ExitCode, error) {
	switch cmd {
	case "rawdemod":
		return cmdRawDemod(sess, collectors, args)
	case "manrawdecode":
		return cmdManRawDecode(sess, args)
	case "biphaserawdecode":
		return cmdBiphaseRawDecode(sess, args)
	case "detectclock":
		return cmdDetectClock(sess, args)
	case "autocorr":
		return cmdAutoCorr(sess, args)
	case "askedgedetect":
		return cmdAskEdgeDetect(sess, args)
	case "decimate":
		return cmdDecimate(sess, args, 1)
	case "undecimate":
		return cmdDecimate(sess, args, -1)
	case "dirthreshold":
		return cmdDirThreshold(sess, args)
	case "shiftgraphzero":
		return cmdShift(sess, args)
	case "ltrim":
		return cmdTrim(sess, args, trimLeft)
	case "rtrim":
		return cmdTrim(sess, args, trimRight)
	case "mtrim":
		return cmdTrim(sess, args, trimMiddle)
	case "norm":
		waveform.Normalize(sess.Samples)
		return rferrors.Success, nil
	case "hpf":
		waveform.HPF(sess.Samples)
		return rferrors.Success, nil
	case "plot", "hide":
		// External plot-window collaborator; out of scope for the core.
		return rferrors.Success, nil
	case "clear":
		sess.Samples.Clear()
		sess.Demod.Set(nil)
		return rferrors.Success, nil
	case "grid":
		return cmdGrid(sess, args)
	case "setgraphmarkers":
		return cmdSetMarkers(sess, args)
	case "timescale":
		return rferrors.Success, nil
	case "getbitstream":
		bits := demod.GetBitStream(sess.Samples)
		fmt.Println(demod.PrintDemodBuff(bits, 0, false, false, false))
		return rferrors.Success, nil
	case "convertbitstream":
		samples := demod.ConvertBitStream(sess.Demod.Bits())
		sess.Samples.LoadSamples(samples)
		return rferrors.Success, nil
	case "zerocrossings":
		waveform.ZeroCrossings(sess.Samples)
		return rferrors.Success, nil
	case "fsktonrz":
		return cmdFSKToNRZ(sess, args)
	case "iir":
		return cmdIIR(sess, args)
	case "bin2hex":
		return cmdBin2Hex(args)
	case "hex2bin":
		return cmdHex2Bin(args)
	case "print":
		return cmdPrint(sess, args)
	case "load":
		return cmdLoad(sess, args)
	case "save":
		return cmdSave(sess, args)
	case "samples":
		fmt.Println(sess.Samples.Samples())
		return rferrors.Success, nil
	case "bitsamples":
		fmt.Println(demod.GetBitStream(sess.Samples))
		return rferrors.Success, nil
	case "hexsamples":
		return cmdHexSamples(sess, args)
	case "modulation":
		return cmdModulation(sess, cfg, collectors, args)
	case "ndef":
		// NDEF parsing is a stub entry point per the console's scope.
		return rferrors.Success, nil
	case "setdebugmode":
		return cmdSetDebugMode(sess, args)
	case "tune":
		log.Println("tune: no hardware attached, antenna voltage reporting unavailable")
		return rferrors.Success, nil
	case "mcp-serve":
		srv := mcpserver.New(sess)
		if err := srv.ServeStdio(context.Background()); err != nil {
			return rferrors.Soft, err
		}
		return rferrors.Success, nil
	default:
		return rferrors.InvArg, rferrors.NewInvalidArg("unknown command %q", cmd)
	}
}

func cmdRawDemod(sess *session.Session, collectors *metrics.Collectors, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("rawdemod", flag.ContinueOnError)
	clk := fs.Int("clk", 0, "bit clock")
	invert := fs.Bool("invert", false, "invert output bits")
	maxErr := fs.Int("maxErr", 0, "maximum tolerated decode errors")
	maxLen := fs.Int("maxLen", 0, "truncate working buffer")
	amplify := fs.Bool("a", false, "pre-amplify ASK signal")
	emSearch := fs.Bool("em", false, "run EM410x search after demod")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	rest := fs.Args()
	if len(rest) < 1 {
		return rferrors.InvArg, rferrors.NewInvalidArg("rawdemod requires a modulation tag")
	}
	tag := rest[0]
	cfg := demod.Config{Clk: *clk, Invert: *invert, MaxErr: *maxErr, MaxLen: *maxLen, Amplify: *amplify, EMSearch: *emSearch}

	collectors.RecordAttempt(tag)
	var bits []byte
	var framing demod.Framing

	switch tag {
	case "am":
		cfg.ASKType = demod.ASKTypeManchester
		res, err := demod.ASKDemod(sess.Samples, cfg)
		if err != nil {
			return rferrors.Soft, err
		}
		bits, framing = res.Buffer.Bits(), res.Framing
	case "ar":
		cfg.ASKType = demod.ASKTypeRaw
		res, err := demod.ASKDemod(sess.Samples, cfg)
		if err != nil {
			return rferrors.Soft, err
		}
		bits, framing = res.Buffer.Bits(), res.Framing
	case "ab":
		res, err := demod.ASKbiphaseDemod(sess.Samples, cfg)
		if err != nil {
			return rferrors.Soft, err
		}
		bits, framing = res.Buffer.Bits(), res.Framing
	case "fs":
		res, err := demod.FSKrawDemod(sess.Samples, cfg)
		if err != nil {
			return rferrors.Soft, err
		}
		bits, framing = res.Buffer.Bits(), res.Framing
		log.Printf("fsk variant: %s", res.Variant)
	case "nr":
		res, err := demod.NRZrawDemod(sess.Samples, cfg)
		if err != nil {
			return rferrors.Soft, err
		}
		bits, framing = res.Buffer.Bits(), res.Framing
	case "p1":
		res, err := demod.PSKDemod(sess.Samples, cfg)
		if err != nil {
			return rferrors.Soft, err
		}
		bits, framing = res.Buffer.Bits(), res.Framing
	case "p2":
		res, err := demod.PSK2Demod(sess.Samples, cfg)
		if err != nil {
			return rferrors.Soft, err
		}
		bits, framing = res.Buffer.Bits(), res.Framing
	default:
		return rferrors.InvArg, rferrors.NewInvalidArg("unknown modulation tag %q", tag)
	}

	if err := sess.ApplyDemod(bits, framing); err != nil {
		return rferrors.Malloc, err
	}
	collectors.RecordSuccess(tag, framing.Clock)

	if cfg.EMSearch {
		if res, err := demod.Em410xSearch(bits); err == nil {
			fmt.Printf("EM410x: hi=%d lo=0x%x\n", res.Hi, res.Lo)
		}
	}
	fmt.Println(demod.PrintDemodBuff(bits, 0, false, false, false))
	return rferrors.Success, nil
}

func cmdManRawDecode(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("manrawdecode", flag.ContinueOnError)
	invert := fs.Bool("i", false, "invert")
	errBudget := fs.Int("err", 0, "maximum tolerated errors")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	decoded, errCount, err := demod.ManchesterDecode(sess.Demod.Bits(), *errBudget)
	if err != nil {
		return rferrors.Soft, err
	}
	if *invert {
		for i, b := range decoded {
			if b != demod.ErrorBit {
				decoded[i] ^= 1
			}
		}
	}
	if err := sess.Demod.Set(decoded); err != nil {
		return rferrors.Malloc, err
	}
	fmt.Printf("decoded %d bits, %d errors\n", len(decoded), errCount)
	return rferrors.Success, nil
}

func cmdBiphaseRawDecode(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("biphaserawdecode", flag.ContinueOnError)
	offset := fs.Int("o", 0, "phase offset (0 or 1)")
	invert := fs.Bool("i", false, "invert")
	errBudget := fs.Int("err", 0, "maximum tolerated errors")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	decoded, errCount, err := demod.BiphaseRawDecode(sess.Demod.Bits(), *offset, *invert)
	if err != nil {
		return rferrors.Soft, err
	}
	if *errBudget > 0 && errCount > *errBudget {
		return rferrors.Soft, rferrors.NewSoftFail("biphase decode exceeded %d errors", *errBudget)
	}
	if err := sess.Demod.Set(decoded); err != nil {
		return rferrors.Malloc, err
	}
	fmt.Printf("decoded %d bits, %d errors\n", len(decoded), errCount)
	return rferrors.Success, nil
}

func cmdDetectClock(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("detectclock", flag.ContinueOnError)
	a := fs.Bool("A", false, "ASK")
	f := fs.Bool("F", false, "FSK")
	n := fs.Bool("N", false, "NRZ")
	p := fs.Bool("P", false, "PSK")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	count := 0
	for _, v := range []bool{*a, *f, *n, *p} {
		if v {
			count++
		}
	}
	if count != 1 {
		return rferrors.InvArg, rferrors.NewInvalidArg("detectclock requires exactly one of -A|-F|-N|-P")
	}
	switch {
	case *a:
		clk, err := clockdetect.ASKClock(sess.Samples)
		if err != nil {
			return rferrors.Soft, err
		}
		fmt.Println(clk)
	case *f:
		clocks, err := clockdetect.FSKClockPair(sess.Samples)
		if err != nil {
			return rferrors.Soft, err
		}
		fmt.Println(clocks.Clk)
	case *n:
		clk, err := clockdetect.NRZClock(sess.Samples)
		if err != nil {
			return rferrors.Soft, err
		}
		fmt.Println(clk)
	case *p:
		clk, _, err := clockdetect.PSKClock(sess.Samples)
		if err != nil {
			return rferrors.Soft, err
		}
		fmt.Println(clk)
	}
	return rferrors.Success, nil
}

func cmdAutoCorr(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("autocorr", flag.ContinueOnError)
	overwriteGraph := fs.Bool("g", false, "overwrite sample buffer with correlation trace")
	window := fs.Int("w", clockdetect.DefaultAutoCorrWindow, "autocorrelation window")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	res, err := clockdetect.AutoCorrelate(sess.Samples, *window)
	if err != nil {
		return rferrors.Soft, err
	}
	if *overwriteGraph {
		sess.Samples.LoadSamples(res.Trace)
		sess.Framing = demod.Framing{Clock: res.Distance, StartIdx: res.PeakIdx}
	}
	fmt.Println(res.Distance)
	return rferrors.Success, nil
}

func cmdAskEdgeDetect(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("askedgedetect", flag.ContinueOnError)
	threshold := fs.Int("t", 25, "edge threshold")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	waveform.EdgeDetect(sess.Samples, *threshold)
	return rferrors.Success, nil
}

func cmdDecimate(sess *session.Session, args []string, sign int) (rferrors.ExitCode, error) {
	n := 2
	if len(args) > 0 {
		if v, err := parseIntArg(args[0]); err == nil {
			n = v
		}
	}
	var err error
	if sign > 0 {
		err = waveform.Decimate(sess.Samples, n)
	} else {
		err = waveform.Interpolate(sess.Samples, n)
	}
	if err != nil {
		return rferrors.InvArg, err
	}
	return rferrors.Success, nil
}

func cmdDirThreshold(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("dirthreshold", flag.ContinueOnError)
	up := fs.Int("u", 0, "rising threshold")
	down := fs.Int("d", 0, "falling threshold")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	waveform.DirectionalThreshold(sess.Samples, *up, *down)
	return rferrors.Success, nil
}

func cmdShift(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("shiftgraphzero", flag.ContinueOnError)
	k := fs.Int("n", 0, "shift amount")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	waveform.Shift(sess.Samples, *k)
	return rferrors.Success, nil
}

type trimKind int

const (
	trimLeft trimKind = iota
	trimRight
	trimMiddle
)

func cmdTrim(sess *session.Session, args []string, kind trimKind) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("trim", flag.ContinueOnError)
	idx := fs.Int("i", 0, "trim index")
	start := fs.Int("s", 0, "middle-trim start")
	end := fs.Int("e", 0, "middle-trim end")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	samples := sess.Samples.Samples()
	switch kind {
	case trimLeft:
		if *idx < 0 || *idx > len(samples) {
			return rferrors.InvArg, rferrors.NewInvalidArg("ltrim index %d out of range", *idx)
		}
		sess.Samples.LoadSamples(samples[*idx:])
	case trimRight:
		if *idx < 0 || *idx > len(samples) {
			return rferrors.InvArg, rferrors.NewInvalidArg("rtrim index %d out of range", *idx)
		}
		sess.Samples.LoadSamples(samples[:len(samples)-*idx])
	case trimMiddle:
		if *start < 0 || *end > len(samples) || *start > *end {
			return rferrors.InvArg, rferrors.NewInvalidArg("mtrim range [%d,%d) out of bounds", *start, *end)
		}
		out := append(append([]int{}, samples[:*start]...), samples[*end:]...)
		sess.Samples.LoadSamples(out)
	}
	return rferrors.Success, nil
}

func cmdGrid(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	x := fs.Int("x", 0, "grid x")
	y := fs.Int("y", 0, "grid y")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	sess.SetClockGrid(*x, *y)
	return rferrors.Success, nil
}

func cmdSetMarkers(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("setgraphmarkers", flag.ContinueOnError)
	a := fs.Int("a", 0, "marker A")
	b := fs.Int("b", 0, "marker B")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	sess.SetMarkers(*a, *b)
	return rferrors.Success, nil
}

func cmdFSKToNRZ(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("fsktonrz", flag.ContinueOnError)
	clk := fs.Int("c", 0, "bit clock")
	low := fs.Int("low", 0, "fc_lo")
	hi := fs.Int("hi", 0, "fc_hi")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	c, fcLo, fcHi := *clk, *low, *hi
	if c == 0 || fcLo == 0 || fcHi == 0 {
		clocks, err := clockdetect.FSKClockPair(sess.Samples)
		if err != nil {
			return rferrors.Soft, err
		}
		if c == 0 {
			c = clocks.Clk
		}
		if fcLo == 0 {
			fcLo = clocks.FCLo
		}
		if fcHi == 0 {
			fcHi = clocks.FCHi
		}
	}
	if err := waveform.FSKToNRZ(sess.Samples, c, fcLo, fcHi); err != nil {
		return rferrors.Soft, err
	}
	return rferrors.Success, nil
}

func cmdIIR(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("iir", flag.ContinueOnError)
	k := fs.Int("n", 1, "iir coefficient")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	if err := waveform.IIR(sess.Samples, *k); err != nil {
		return rferrors.InvArg, err
	}
	return rferrors.Success, nil
}

func cmdBin2Hex(args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("bin2hex", flag.ContinueOnError)
	bits := fs.String("d", "", "bit string")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	hex, err := demod.Bin2Hex(*bits)
	if err != nil {
		return rferrors.InvArg, err
	}
	fmt.Println(hex)
	return rferrors.Success, nil
}

func cmdHex2Bin(args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("hex2bin", flag.ContinueOnError)
	hex := fs.String("d", "", "hex string")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	bin, err := demod.Hex2Bin(*hex)
	if err != nil {
		return rferrors.InvArg, err
	}
	fmt.Println(bin)
	return rferrors.Success, nil
}

func cmdPrint(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	invert := fs.Bool("i", false, "invert")
	offset := fs.Int("o", 0, "offset")
	strip := fs.Bool("s", false, "strip leading zeros")
	hex := fs.Bool("x", false, "render as hex")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	fmt.Println(demod.PrintDemodBuff(sess.Demod.Bits(), *offset, *strip, *invert, *hex))
	return rferrors.Success, nil
}

func cmdLoad(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("load", flag.ContinueOnError)
	file := fs.String("f", "", "trace file path")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	if *file == "" {
		return rferrors.InvArg, rferrors.NewInvalidArg("load requires -f <file>")
	}
	if err := traceio.ClampedLoad(sess.Samples, *file); err != nil {
		return rferrors.FileErr, err
	}
	return rferrors.Success, nil
}

func cmdSave(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	wav := fs.Bool("w", false, "write a PCM WAV container")
	file := fs.String("f", "", "trace file path")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	if *file == "" {
		return rferrors.InvArg, rferrors.NewInvalidArg("save requires -f <file>")
	}
	var err error
	if *wav {
		err = traceio.SaveWAV(*file, sess.Samples.Samples())
	} else {
		err = traceio.SaveTrace(*file, sess.Samples.Samples())
	}
	if err != nil {
		return rferrors.FileErr, err
	}
	return rferrors.Success, nil
}

func cmdHexSamples(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("hexsamples", flag.ContinueOnError)
	breaks := fs.Int("b", 16, "row break, def 16")
	n := fs.Int("n", 8, "num of bytes to dump")
	offset := fs.Int("o", 0, "offset in sample buffer")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	samples := sess.Samples.Samples()
	if *offset < 0 || *n < 0 || *offset+*n > len(samples) {
		return rferrors.InvArg, rferrors.NewInvalidArg("tried to read past end of buffer, <bytes %d> + <offset %d> > %d", *n, *offset, len(samples))
	}
	raw := make([]byte, *n)
	for i, v := range samples[*offset : *offset+*n] {
		raw[i] = byte(v + 127)
	}
	fmt.Println(demod.SprintHexBreak(raw, *breaks))
	return rferrors.Success, nil
}

func cmdModulation(sess *session.Session, cfg sessionconfig.Config, collectors *metrics.Collectors, args []string) (rferrors.ExitCode, error) {
	reports := probe.Probe(sess.Samples, probe.Options{PSKLeftTrim: cfg.PSKProbeTrim})
	for _, r := range reports {
		collectors.RecordAttempt(r.Modulation)
		collectors.RecordSuccess(r.Modulation, r.Bitrate)
		fmt.Printf("%s clock=%d carrier=%d fc1=%d fc2=%d\n", r.Modulation, r.Bitrate, r.Carrier, r.FC1, r.FC2)
	}
	return rferrors.Success, nil
}

func cmdSetDebugMode(sess *session.Session, args []string) (rferrors.ExitCode, error) {
	fs := flag.NewFlagSet("setdebugmode", flag.ContinueOnError)
	zero := fs.Bool("0", false, "silent")
	one := fs.Bool("1", false, "info")
	two := fs.Bool("2", false, "verbose")
	if err := fs.Parse(args); err != nil {
		return rferrors.InvArg, err
	}
	switch {
	case *two:
		sess.SetVerbosity(session.VerbosityVerbose)
	case *one:
		sess.SetVerbosity(session.VerbosityInfo)
	case *zero:
		sess.SetVerbosity(session.VerbositySilent)
	}
	return rferrors.Success, nil
}

func parseIntArg(s string) (int, error) {
	var v int
	_, err := fmt.Sscanf(s, "%d", &v)
	return v, err
}
