package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ehrlich-b/cube/internal/cube"
)

type SolveRequest struct {
	Scramble string `json:"scramble"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Moves    int    `json:"moves"`
	Time     string `json:"time"`
}

type ScrambleResponse struct {
	Scramble string `json:"scramble"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>Cube Solver</h1>
    <div class="container">
        <h2>Solve a 3x3x3 cube</h2>
        <form id="solveForm">
            <div>
                <label>Scramble:</label><br>
                <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble })
                });

                const result = await response.json();
                document.getElementById('result').innerHTML =
                    '<h3>Solution:</h3><p>' + result.solution + '</p>' +
                    '<p><strong>Moves:</strong> ' + result.moves + '</p>' +
                    '<p><strong>Time:</strong> ' + result.time + '</p>';
                document.getElementById('result').style.display = 'block';
            } catch (error) {
                document.getElementById('result').innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
                document.getElementById('result').style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	alg, err := cube.ParseAlgorithm(req.Scramble)
	if err != nil {
		http.Error(w, fmt.Sprintf("parsing scramble: %v", err), http.StatusBadRequest)
		return
	}

	c := cube.NewSolvedCube()
	c.ApplyAlgorithm(alg)

	result := cube.TwoPhaseSolve(c, cube.DefaultOrientationTablePath, cube.DefaultPermutationTablePath)

	response := SolveResponse{
		Solution: result.Solution.String(),
		Moves:    result.Solution.Len(),
		Time:     result.Duration.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	alg := cube.RandomScramble(25)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScrambleResponse{Scramble: alg.String()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
