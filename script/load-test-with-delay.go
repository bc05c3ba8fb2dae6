package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scenario is one kind of request the load test fires
type Scenario struct {
	Name string
	Path string // relative to /players/:playerId
	Body map[string]any
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	Rejected     bool // 422 insufficient funds is an expected outcome
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	RejectedRequests   int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 500, "Total number of requests to make")
	playerCount := flag.Int("p", 5, "Number of players to register and spread load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 10, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	playerIDs := make([]string, 0, *playerCount)
	for i := 0; i < *playerCount; i++ {
		id, err := registerPlayer(client, *baseURL)
		if err != nil {
			fmt.Printf("Failed to register player: %v\n", err)
			return
		}
		playerIDs = append(playerIDs, id)
	}

	scenarios := []Scenario{
		{"Deposit", "/wallet/deposit", map[string]any{"amountCents": "2500"}},
		{"Withdraw", "/wallet/withdraw", map[string]any{"amountCents": "4000"}},
		{"Slots Win", "/bets/play", map[string]any{"gameCode": "slots", "amountCents": "1000", "outcome": "WIN"}},
		{"Slots Loss", "/bets/play", map[string]any{"gameCode": "slots", "amountCents": "1500", "outcome": "LOSS"}},
		{"Roulette Loss", "/bets/play", map[string]any{"gameCode": "roulette", "amountCents": "6000", "outcome": "LOSS"}},
		{"Blackjack Win", "/bets/play", map[string]any{"gameCode": "blackjack", "amountCents": "2000", "outcome": "WIN", "payoutCents": "5000"}},
	}

	fmt.Printf("Load testing %d players with %d scenarios\n", len(playerIDs), len(scenarios))
	fmt.Printf("Concurrency: %d goroutines, total requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, playerIDs, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.Lock.Lock()
		stats.ScenarioStats[result.Scenario]++
		switch {
		case result.Success:
			stats.SuccessfulRequests++
		case result.Rejected:
			stats.RejectedRequests++
		default:
			stats.FailedRequests++
			errMsg := "unknown"
			if result.Error != nil {
				errMsg = result.Error.Error()
			}
			stats.ErrorCounts[errMsg]++
		}
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		stats.Lock.Unlock()
	}
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	reconcileAll(client, *baseURL, playerIDs)
}

func registerPlayer(client *http.Client, baseURL string) (string, error) {
	resp, err := client.Post(baseURL+"/players", "application/json", bytes.NewBufferString("{}"))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var body struct {
		PlayerID string `json:"playerId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.PlayerID, nil
}

func worker(client *http.Client, baseURL string, delayMs int, playerIDs []string,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		playerID := playerIDs[rand.IntN(len(playerIDs))]
		scenario := scenarios[rand.IntN(len(scenarios))]
		result := TestResult{Scenario: scenario.Name}

		jsonData, err := json.Marshal(scenario.Body)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+"/players/"+playerID+scenario.Path, bytes.NewBuffer(jsonData))
		if err != nil {
			result.Error = err
			results <- result
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", uuid.NewString())

		startTime := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(startTime)

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			result.Rejected = resp.StatusCode == http.StatusUnprocessableEntity
			if !result.Success && !result.Rejected {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

// reconcileAll checks that every player's balance equals the sum of their log
func reconcileAll(client *http.Client, baseURL string, playerIDs []string) {
	fmt.Println("\n----------------- RECONCILIATION -----------------")
	for _, playerID := range playerIDs {
		resp, err := client.Get(baseURL + "/players/" + playerID + "/reconcile")
		if err != nil {
			fmt.Printf("%s: request failed: %v\n", playerID, err)
			continue
		}

		var body struct {
			BalanceCents   string `json:"balanceCents"`
			LedgerSumCents string `json:"ledgerSumCents"`
			Consistent     bool   `json:"consistent"`
		}
		err = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		if err != nil {
			fmt.Printf("%s: bad response: %v\n", playerID, err)
			continue
		}

		status := "✅"
		if !body.Consistent {
			status = "❌"
		}
		fmt.Printf("%s %s balance=%s ledger=%s\n", status, playerID, body.BalanceCents, body.LedgerSumCents)
	}
}

func printResults(stats *TestStats) {
	completed := stats.SuccessfulRequests + stats.RejectedRequests + stats.FailedRequests
	tps := float64(completed) / stats.TotalTime.Seconds()

	var avg, p50, p90, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sorted := make([]time.Duration, len(stats.ResponseTimes))
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var total time.Duration
		for _, d := range sorted {
			total += d
		}
		avg = total / time.Duration(len(sorted))
		p50 = sorted[len(sorted)*50/100]
		p90 = sorted[len(sorted)*90/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Rejected (422):      %d\n", stats.RejectedRequests)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
