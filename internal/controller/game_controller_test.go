package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbeisheim/hexchess-backend/internal/model"
	"github.com/benbeisheim/hexchess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func newTestApp() *fiber.App {
	gameService := service.NewGameService(service.NewGameManager())
	app := fiber.New()
	SetupRoutes(app, NewGameController(gameService), NewWebSocketController(gameService), websocket.Config{})
	return app
}

func do(t *testing.T, app *fiber.App, method, target, player, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if player != "" {
		req.Header.Set("X-Player-ID", player)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func expectStatus(t *testing.T, resp *http.Response, body []byte, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("expected status %d, got %d: %s", want, resp.StatusCode, body)
	}
}

func createSeatedGame(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := do(t, app, "POST", "/api/game/create", "alice", `{"public":true}`)
	expectStatus(t, resp, body, fiber.StatusCreated)
	var created struct {
		GameID string `json:"game_id"`
	}
	if err := json.Unmarshal(body, &created); err != nil || created.GameID == "" {
		t.Fatalf("bad create response %s (%v)", body, err)
	}
	for _, p := range []string{"alice", "bob"} {
		resp, body = do(t, app, "POST", "/api/game/join/"+created.GameID, p, "")
		expectStatus(t, resp, body, fiber.StatusOK)
	}
	return created.GameID
}

func TestGameFlow(t *testing.T) {
	app := newTestApp()
	gameID := createSeatedGame(t, app)

	resp, body := do(t, app, "GET", "/api/game/"+gameID+"/moves?from=e4", "alice", "")
	expectStatus(t, resp, body, fiber.StatusOK)
	var legal struct {
		Cells []string `json:"cells"`
	}
	if err := json.Unmarshal(body, &legal); err != nil || len(legal.Cells) != 2 {
		t.Fatalf("unexpected legal moves %s (%v)", body, err)
	}

	resp, body = do(t, app, "POST", "/api/game/"+gameID+"/move", "alice", `{"from":"e4","to":"e6"}`)
	expectStatus(t, resp, body, fiber.StatusOK)
	var view service.GameView
	if err := json.Unmarshal(body, &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.Game.SideTurn != model.Black || view.MoveHistory.White[0] != "e6" {
		t.Fatalf("unexpected view after move: %s", body)
	}

	resp, body = do(t, app, "POST", "/api/game/"+gameID+"/move", "bob", `{"from":{"q":0,"r":-1,"s":1},"to":"f6"}`)
	expectStatus(t, resp, body, fiber.StatusOK)

	resp, body = do(t, app, "GET", "/api/game/"+gameID+"/history/1", "carol", "")
	expectStatus(t, resp, body, fiber.StatusOK)
	var snap model.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil || snap.SideTurn != model.Black || len(snap.History) != 1 {
		t.Fatalf("unexpected position %s (%v)", body, err)
	}

	resp, body = do(t, app, "POST", "/api/game/"+gameID+"/surrender", "alice", "")
	expectStatus(t, resp, body, fiber.StatusOK)
	if err := json.Unmarshal(body, &view); err != nil || view.Game.State != model.BlackWonBySurrender {
		t.Fatalf("unexpected view after surrender: %s", body)
	}
}

func TestErrorStatuses(t *testing.T) {
	app := newTestApp()
	gameID := createSeatedGame(t, app)
	base := "/api/game/" + gameID

	tests := []struct {
		name           string
		method, target string
		player, body   string
		status         int
	}{
		{"no player id", "GET", base, "", "", fiber.StatusUnauthorized},
		{"unknown game", "GET", "/api/game/nope", "alice", "", fiber.StatusNotFound},
		{"game full", "POST", "/api/game/join/" + gameID, "carol", "", fiber.StatusConflict},
		{"spectator move", "POST", base + "/move", "carol", `{"from":"e4","to":"e6"}`, fiber.StatusForbidden},
		{"out of turn", "POST", base + "/move", "bob", `{"from":"f7","to":"f6"}`, fiber.StatusUnprocessableEntity},
		{"illegal move", "POST", base + "/move", "alice", `{"from":"e4","to":"e8"}`, fiber.StatusUnprocessableEntity},
		{"bad cell", "POST", base + "/move", "alice", `{"from":"j4","to":"e6"}`, fiber.StatusBadRequest},
		{"broken json", "POST", base + "/move", "alice", `{"from":`, fiber.StatusBadRequest},
		{"bad from query", "GET", base + "/moves?from=z9", "alice", "", fiber.StatusBadRequest},
		{"empty from cell", "GET", base + "/moves?from=f6", "alice", "", fiber.StatusUnprocessableEntity},
		{"history out of range", "GET", base + "/history/5", "alice", "", fiber.StatusBadRequest},
		{"history not a number", "GET", base + "/history/x", "alice", "", fiber.StatusBadRequest},
		{"delete by non creator", "DELETE", base, "bob", "", fiber.StatusForbidden},
		{"restore invalid", "POST", "/api/game/restore", "alice", `{"gameSave":{"state":"inProgress","sideTurn":"white","pieces":[]}}`, fiber.StatusBadRequest},
		{"websocket without upgrade", "GET", "/ws/game/" + gameID, "alice", "", fiber.StatusUpgradeRequired},
		{"malformed player id", "GET", base, "al ice", "", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, app, tt.method, tt.target, tt.player, tt.body)
			expectStatus(t, resp, body, tt.status)
		})
	}
}

func TestOpenGamesAndDelete(t *testing.T) {
	app := newTestApp()

	resp, body := do(t, app, "POST", "/api/game/create", "alice", `{"public":true}`)
	expectStatus(t, resp, body, fiber.StatusCreated)
	var created struct {
		GameID string `json:"game_id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	resp, body = do(t, app, "GET", "/api/game/open", "bob", "")
	expectStatus(t, resp, body, fiber.StatusOK)
	var open struct {
		Games []service.LobbyEntry `json:"games"`
	}
	if err := json.Unmarshal(body, &open); err != nil || len(open.Games) != 1 || open.Games[0].GameID != created.GameID {
		t.Fatalf("unexpected lobby %s (%v)", body, err)
	}

	resp, body = do(t, app, "DELETE", "/api/game/"+created.GameID, "alice", "")
	expectStatus(t, resp, body, fiber.StatusNoContent)

	resp, body = do(t, app, "GET", "/api/game/open", "bob", "")
	expectStatus(t, resp, body, fiber.StatusOK)
	if err := json.Unmarshal(body, &open); err != nil || len(open.Games) != 0 {
		t.Fatalf("expected an empty lobby, got %s", body)
	}
}

func TestRestoreGame(t *testing.T) {
	app := newTestApp()

	g := model.NewGame()
	if err := g.MovePiece(model.NewCoordinate(-1, 2, -1), model.NewCoordinate(-1, 0, 1), ""); err != nil {
		t.Fatalf("MovePiece: %v", err)
	}
	payload, err := json.Marshal(map[string]interface{}{"public": false, "gameSave": g.Snapshot()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	resp, body := do(t, app, "POST", "/api/game/restore", "alice", string(payload))
	expectStatus(t, resp, body, fiber.StatusCreated)
	var restored struct {
		Game service.GameView `json:"game"`
	}
	if err := json.Unmarshal(body, &restored); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if restored.Game.Game.SideTurn != model.Black || len(restored.Game.MoveHistory.White) != 1 {
		t.Fatalf("unexpected restored game %s", body)
	}
}
