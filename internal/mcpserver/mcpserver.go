// Package mcpserver exposes a small, explicit subset of the data
// console's command surface as Model Context Protocol tools, bound to
// one session, so an external automation harness can drive
// demodulation the same way an interactive operator would. Grounded
// on the teacher's MCPServer wrapper (mcp_server.go), which constructs
// a server.MCPServer and registers tools via AddTool/NewTool.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/iceman-lab/rfsignalcore/internal/clockdetect"
	"github.com/iceman-lab/rfsignalcore/internal/demod"
	"github.com/iceman-lab/rfsignalcore/internal/probe"
	"github.com/iceman-lab/rfsignalcore/internal/session"
)

// Server wraps a mark3labs/mcp-go server bound to one Session.
type Server struct {
	mcpServer *server.MCPServer
	sess      *session.Session
}

// New constructs the MCP tool surface for sess.
func New(sess *session.Session) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("rfsignalcore", "1.0.0", server.WithToolCapabilities(true)),
		sess:      sess,
	}
	s.registerTools()
	return s
}

// ServeStdio runs the MCP server over stdio until the stdio server
// returns; ctx is not consulted.
func (s *Server) ServeStdio(ctx context.Context) error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("rawdemod",
		mcp.WithDescription("Run a raw demodulation (ab|am|ar|fs|nr|p1|p2) against the current sample buffer"),
		mcp.WithString("tag", mcp.Description("two-letter modulation tag"), mcp.Required()),
	), s.handleRawDemod)

	s.mcpServer.AddTool(mcp.NewTool("detectclock",
		mcp.WithDescription("Estimate the bit clock under one modulation family (A|F|N|P)"),
		mcp.WithString("family", mcp.Description("A, F, N, or P"), mcp.Required()),
	), s.handleDetectClock)

	s.mcpServer.AddTool(mcp.NewTool("autocorr",
		mcp.WithDescription("Run autocorrelation clock detection over the current sample buffer"),
		mcp.WithString("window", mcp.Description("autocorrelation window, default 4000")),
	), s.handleAutoCorr)

	s.mcpServer.AddTool(mcp.NewTool("print",
		mcp.WithDescription("Render the current DemodBuffer as bits or hex"),
	), s.handlePrint)

	s.mcpServer.AddTool(mcp.NewTool("modulation",
		mcp.WithDescription("Probe every modulation against the current sample buffer and rank the results"),
	), s.handleModulation)
}

func (s *Server) handleRawDemod(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tag := req.GetString("tag", "")
	var framing demod.Framing
	var bits []byte
	var variant string

	switch tag {
	case "am":
		res, err := demod.ASKDemod(s.sess.Samples, demod.Config{ASKType: demod.ASKTypeManchester})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		bits, framing, variant = res.Buffer.Bits(), res.Framing, "ASK/Manchester"
	case "ar":
		res, err := demod.ASKDemod(s.sess.Samples, demod.Config{ASKType: demod.ASKTypeRaw})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		bits, framing, variant = res.Buffer.Bits(), res.Framing, "ASK/raw"
	case "ab":
		res, err := demod.ASKbiphaseDemod(s.sess.Samples, demod.Config{})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		bits, framing, variant = res.Buffer.Bits(), res.Framing, "ASK/biphase"
	case "fs":
		res, err := demod.FSKrawDemod(s.sess.Samples, demod.Config{})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		bits, framing, variant = res.Buffer.Bits(), res.Framing, res.Variant
	case "nr":
		res, err := demod.NRZrawDemod(s.sess.Samples, demod.Config{})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		bits, framing, variant = res.Buffer.Bits(), res.Framing, "NRZ"
	case "p1":
		res, err := demod.PSKDemod(s.sess.Samples, demod.Config{})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		bits, framing, variant = res.Buffer.Bits(), res.Framing, "PSK1"
	case "p2":
		res, err := demod.PSK2Demod(s.sess.Samples, demod.Config{})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		bits, framing, variant = res.Buffer.Bits(), res.Framing, "PSK2"
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown modulation tag %q", tag)), nil
	}

	if err := s.sess.ApplyDemod(bits, framing); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s: %d bits, clock=%d, start=%d",
		variant, len(bits), framing.Clock, framing.StartIdx)), nil
}

func (s *Server) handleDetectClock(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	family := req.GetString("family", "A")
	switch family {
	case "A":
		clk, err := clockdetect.ASKClock(s.sess.Samples)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("ASK clock=%d", clk)), nil
	case "F":
		clocks, err := clockdetect.FSKClockPair(s.sess.Samples)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("fc_lo=%d fc_hi=%d clk=%d", clocks.FCLo, clocks.FCHi, clocks.Clk)), nil
	case "N":
		clk, err := clockdetect.NRZClock(s.sess.Samples)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("NRZ clock=%d", clk)), nil
	case "P":
		clk, carrier, err := clockdetect.PSKClock(s.sess.Samples)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("PSK clock=%d carrier=%d", clk, carrier)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown clock family %q", family)), nil
	}
}

func (s *Server) handleAutoCorr(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	window := req.GetInt("window", clockdetect.DefaultAutoCorrWindow)
	res, err := clockdetect.AutoCorrelate(s.sess.Samples, window)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("distance=%d peak_idx=%d", res.Distance, res.PeakIdx)), nil
}

func (s *Server) handlePrint(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := demod.PrintDemodBuff(s.sess.Demod.Bits(), 0, false, false, false)
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleModulation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reports := probe.Probe(s.sess.Samples, probe.Options{})
	if len(reports) == 0 {
		return mcp.NewToolResultText("no modulation matched"), nil
	}
	out := ""
	for _, r := range reports {
		out += fmt.Sprintf("%s clock=%d carrier=%d fc1=%d fc2=%d\n", r.Modulation, r.Bitrate, r.Carrier, r.FC1, r.FC2)
	}
	return mcp.NewToolResultText(out), nil
}
