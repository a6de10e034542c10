package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/latrones/game/engine"
	"github.com/wricardo/latrones/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Latrones",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Latrones - MCP Interface

A two-player game on an 8x8 board. Light and Dark first place their pieces one
at a time, then move them like rooks and capture by sandwiching.

This is a thin client that proxies all requests to the REST API server.

AVAILABLE TOOLS:
- create_session: Create a new game session
- list_sessions: List all active sessions
- get_session: Get session details
- game_state: Show the board and whose turn it is
- select_square: Click a square (place, select, deselect or move)
- set_starting_pieces: Skip placement with the preset starting layout
- reset_game: Empty board, placement phase
- list_configs: List rules presets
- game_instructions: Full rules
- describe_square: Contents and legal moves of one square

Squares are named a1..h8 (file a-h, rank 1-8) or indexed 0..63 (a1=0, h1=7, a8=56).`),
	)

	c.registerTools()
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

func squareProperties() map[string]interface{} {
	return map[string]interface{}{
		"session_id": sessionIDProperty(),
		"square": map[string]interface{}{
			"type":        "string",
			"description": "Square coordinate such as c3 (file a-h, rank 1-8)",
		},
		"index": map[string]interface{}{
			"type":        "integer",
			"description": "Square index 0-63 (a1=0, h1=7, a8=56); used when square is omitted",
		},
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional rules preset",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Rules preset to use (optional, see list_configs)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board, phase and player to act",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name: "select_square",
		Description: "Click a square for the player to act. During placement this places a piece on an empty square. " +
			"During movement the first click selects one of your pieces, clicking it again deselects it, " +
			"clicking another of your pieces switches the selection and clicking a highlighted square moves there.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: squareProperties(),
			Required:   []string{"session_id"},
		},
	}, c.handleSelectSquare)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "set_starting_pieces",
		Description: "Replace the board with the preset starting layout and begin the movement phase with Light to move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleSetStartingPieces)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to an empty board in the placement phase",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	// Configuration
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available rules presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the complete rules of Latrones",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_square",
		Description: "Describe one square: its contents, whether the player to act can use it, and where a piece on it could move",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: squareProperties(),
			Required:   []string{"session_id"},
		},
	}, c.handleDescribeSquare)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls
func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	return args
}

// squareArgument reads the target square from "square" (a coordinate or a
// numeric string) or from "index".
func squareArgument(args map[string]interface{}) (int, error) {
	if square, ok := args["square"].(string); ok && strings.TrimSpace(square) != "" {
		return engine.ParseSquare(square)
	}
	switch v := args["index"].(type) {
	case float64:
		index := int(v)
		if float64(index) != v {
			return -1, fmt.Errorf("index must be a whole number, got %v", v)
		}
		// Range is the engine's call; off-board clicks come back refused
		return index, nil
	case string:
		if index, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return index, nil
		}
		return engine.ParseSquare(v)
	}
	return -1, fmt.Errorf("either square (e.g. c3) or index (0-%d) is required", engine.SquareCount-1)
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	configID, _ := arguments(request)["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Created session: %s\nRules: %s\n\n%s",
		session.ID, session.ConfigID, formatGameState(session.GameState))), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}
	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		status := ""
		if s.GameState != nil {
			status = ", " + s.GameState.Message
		}
		fmt.Fprintf(&b, "- %s (Rules: %s, Created: %s%s)\n",
			s.ID, s.ConfigID, s.CreatedAt.Format("15:04:05"), status)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", "/api/sessions/"+sessionID, nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", "/api/sessions/"+sessionID+"/state", nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleSelectSquare(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	index, err := squareArgument(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result service.ActionResult
	body := map[string]int{"index": index}
	if err := c.apiCall(ctx, "POST", "/api/sessions/"+sessionID+"/select", body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatActionResult(engine.SquareName(index), &result)), nil
}

func (c *Client) handleSetStartingPieces(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var result service.ActionResult
	if err := c.apiCall(ctx, "POST", "/api/sessions/"+sessionID+"/setup", nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatActionResult("", &result)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}
	if err := c.apiCall(ctx, "POST", "/api/sessions/"+sessionID+"/reset", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Rules Presets:\n\n")
	for _, cfg := range configs {
		fmt.Fprintf(&b, "• %s (%s)\n  %s\n  Pieces per player: %d, Edge captures: %s, Placement captures: %s\n\n",
			cfg.ConfigID, cfg.Name, cfg.Description, cfg.PiecesPerPlayer,
			onOff(cfg.EdgeCaptures), onOff(cfg.PlacementCaptures))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

const instructions = `Latrones - Complete Rules

BOARD:
8x8 squares named a1..h8. Files a-h run left to right, ranks 1-8 bottom to top.
Indices run 0..63 row by row from a1 (a1=0, h1=7, a2=8, h8=63).
In board diagrams L is a Light piece, D a Dark piece and . an empty square.

PLAYERS:
Light moves first. Turns alternate after every completed placement or move.

PHASE 1 - PLACEMENT:
Each player has a fixed number of pieces (8 in the classic rules).
On your turn, select_square an empty square to place one piece there.
When both players have placed all their pieces the movement phase begins and
Light moves first. set_starting_pieces skips placement with a preset layout.

PHASE 2 - MOVEMENT:
Pieces move like a chess rook: any number of empty squares in a straight line
up, down, left or right. They cannot jump over pieces.
A move takes two clicks:
1. select_square one of your pieces that can move (it becomes selected)
2. select_square one of its highlighted destinations
Clicking the selected piece again deselects it. Clicking another of your
movable pieces switches the selection. Any other click is refused and the
selection is kept.

CAPTURE (custodian):
After your piece lands, every enemy piece directly next to it (up, down, left
or right) that has one of YOUR pieces on its far side is removed. One move can
capture in several directions. Moving your own piece between two enemies is
safe. Some presets let the board edge act as your piece (edge captures) or let
placements capture too.

WINNING:
- Remove every enemy piece (during placement this only counts once the enemy
  has no pieces left to place), or
- leave your opponent with no legal action on their turn.

TIPS:
- game_state shows the board with rank 8 on top, the player to act and the
  legal targets. Squares marked * are destinations of the selected piece.
- describe_square tells you what is on a square and where it can move.
- A refused click does not change the game; read the message and try again.`

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeSquare(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	index, err := squareArgument(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", "/api/sessions/"+sessionID+"/state", nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := describeSquare(&state, index)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// describeSquare explains one square in terms of the player to act.
func describeSquare(state *engine.GameState, index int) (string, error) {
	board, err := engine.BoardFromInts(state.Board)
	if err != nil {
		return "", err
	}
	sq, err := board.Read(index)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Square %s (index %d)\n", engine.SquareName(index), index)
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "Contents: %s\n", sq)

	selected := state.SelectedSquare != nil && *state.SelectedSquare == index
	if selected {
		b.WriteString("Selected: yes\n")
	}

	if state.GameOver {
		b.WriteString("The game is over.\n")
		return b.String(), nil
	}

	target := containsInt(state.ValidMoves, index)
	switch {
	case state.Phase == engine.Placement && sq == engine.Empty:
		fmt.Fprintf(&b, "%s can place a piece here.\n", state.CurrentPlayer)
	case state.Phase == engine.Placement:
		b.WriteString("Occupied; nothing can be placed here.\n")
	case state.SelectedSquare != nil && target:
		fmt.Fprintf(&b, "Legal destination for the piece on %s.\n", engine.SquareName(*state.SelectedSquare))
	}

	if owner, ok := sq.Owner(); ok && state.Phase == engine.Movement {
		dests := board.Destinations(index)
		if len(dests) == 0 {
			b.WriteString("This piece is blocked in and cannot move.\n")
		} else {
			fmt.Fprintf(&b, "Can move to: %s\n", squareNames(dests))
		}
		if owner == state.CurrentPlayer && !selected && len(dests) > 0 {
			fmt.Fprintf(&b, "%s can select this piece.\n", owner)
		}
	}

	return b.String(), nil
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// squareNames lists squares in index order.
func squareNames(indices []int) string {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	names := make([]string, len(sorted))
	for i, idx := range sorted {
		names[i] = engine.SquareName(idx)
	}
	return strings.Join(names, ", ")
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nRules: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigID,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

// formatBoard draws the board with rank 8 on top. The selected piece is shown
// in lower case and destinations of the selection as '*'.
func formatBoard(state *engine.GameState) string {
	selected := -1
	if state.SelectedSquare != nil {
		selected = *state.SelectedSquare
	}
	targets := map[int]bool{}
	if selected >= 0 {
		for _, idx := range state.ValidMoves {
			targets[idx] = true
		}
	}

	var b strings.Builder
	b.WriteString("  a b c d e f g h\n")
	for row := engine.BoardSide - 1; row >= 0; row-- {
		fmt.Fprintf(&b, "%d ", row+1)
		for col := 0; col < engine.BoardSide; col++ {
			idx := row*engine.BoardSide + col
			ch := byte('.')
			if idx < len(state.Board) {
				ch = engine.SquareChar(engine.Square(state.Board[idx]))
			}
			switch {
			case idx == selected:
				ch += 'a' - 'A'
			case targets[idx]:
				ch = '*'
			}
			b.WriteByte(ch)
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d\n", row+1)
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Phase: %s | To act: %s | Pieces: light %d, dark %d\n",
		state.Phase, state.CurrentPlayer, state.Pieces.Light, state.Pieces.Dark)
	if state.Phase == engine.Placement {
		fmt.Fprintf(&b, "Left to place: light %d, dark %d\n",
			state.RemainingPlacements.Light, state.RemainingPlacements.Dark)
	}
	b.WriteString("\n")
	b.WriteString(formatBoard(state))

	if !state.GameOver {
		switch {
		case state.Phase == engine.Placement:
			fmt.Fprintf(&b, "\n%d empty squares available for placement", len(state.ValidMoves))
		case state.SelectedSquare != nil:
			fmt.Fprintf(&b, "\nDestinations: %s", squareNames(state.ValidMoves))
		default:
			fmt.Fprintf(&b, "\nMovable pieces: %s", squareNames(state.ValidMoves))
		}
	}

	if state.Message != "" {
		fmt.Fprintf(&b, "\nMessage: %s", state.Message)
	}
	return b.String()
}

func formatActionResult(square string, result *service.ActionResult) string {
	var b strings.Builder
	switch {
	case result.Success && square != "":
		fmt.Fprintf(&b, "✓ %s accepted\n", square)
	case result.Success:
		b.WriteString("✓ Accepted\n")
	default:
		fmt.Fprintf(&b, "✗ Refused: %s\n", result.Message)
	}

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			fmt.Fprintf(&b, "- %s: %s\n", event.Type, event.Message)
		}
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}
