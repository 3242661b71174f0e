// main.go
//
// A scalable, high performance drop-in replacement for the realty-dash nodejs data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of realtydash.
// realtydash is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// realtydash is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with realtydash.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/localnerve/realtydash/internal/config"
	"github.com/localnerve/realtydash/internal/services"
	"github.com/localnerve/realtydash/internal/utils"
)

// Container HEALTHCHECK probe: hits the running server's health route and
// exits 0/1 on its status.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	serverURL := fmt.Sprintf("http://localhost:%s", cfg.Port)

	// Fast-fail if the port is not even accepting connections
	if err := utils.PingServer(serverURL); err != nil {
		log.Fatalf("Server unreachable: %v", err)
	}

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(serverURL + "/api/health")
	if err != nil {
		log.Fatalf("Health request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read health response: %v", err)
	}

	var result services.HealthCheckResult
	if err := json.Unmarshal(body, &result); err != nil {
		log.Fatalf("Failed to parse health response: %v", err)
	}

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if resp.StatusCode != http.StatusOK || result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
