// Command fixture-upstream serves canned movelists in the upstream API
// shape for local development, so the service can run without network
// access to the real frame-data source.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"
)

type moveRecord struct {
	Command      string `json:"command"`
	HitLevel     string `json:"hit_level"`
	Damage       string `json:"damage"`
	Startup      string `json:"startup"`
	OnBlock      string `json:"on_block"`
	OnHit        string `json:"on_hit"`
	OnCounterHit string `json:"on_ch"`
	Notes        string `json:"notes"`
}

// fixtures is a small but classification-complete sample: launchers, fast
// pokes, plus frames, special properties, and punishable moves all appear.
var fixtures = map[string][]moveRecord{
	"devil-jin": {
		{Command: "1,1,2", HitLevel: "h,h,m", Damage: "5,6,10", Startup: "i10", OnBlock: "+5", OnHit: "+8", OnCounterHit: "+8"},
		{Command: "f,n,d,df+2", HitLevel: "m", Damage: "23", Startup: "i11", OnBlock: "-5", OnHit: "Launch", OnCounterHit: "Launch", Notes: "Electric"},
		{Command: "b+4", HitLevel: "m", Damage: "22", Startup: "i17", OnBlock: "-9", OnHit: "+7", OnCounterHit: "Launch", Notes: "Homing"},
		{Command: "uf+4", HitLevel: "m", Damage: "15", Startup: "i15", OnBlock: "-13", OnHit: "Launch", OnCounterHit: "Launch"},
		{Command: "df+1,2", HitLevel: "m,m", Damage: "10,12", Startup: "i13", OnBlock: "-12", OnHit: "+5", OnCounterHit: "+5"},
	},
	"dragunov": {
		{Command: "df+1", HitLevel: "m", Damage: "10", Startup: "i13", OnBlock: "-3", OnHit: "+5", OnCounterHit: "+5"},
		{Command: "db+3+4", HitLevel: "l", Damage: "24", Startup: "i23~24", OnBlock: "-31", OnHit: "KND", OnCounterHit: "KND", Notes: "Hellsweep"},
		{Command: "f+4,4", HitLevel: "m,m", Damage: "12,20", Startup: "i17", OnBlock: "-15", OnHit: "KND", OnCounterHit: "KND"},
		{Command: "wr+2", HitLevel: "m", Damage: "26", Startup: "i17~18", OnBlock: "+5", OnHit: "Launch", OnCounterHit: "Launch", Notes: "Tornado"},
		{Command: "4", HitLevel: "h", Damage: "15", Startup: "i11", OnBlock: "-9", OnHit: "+8", OnCounterHit: "Launch"},
	},
	"kazuya": {
		{Command: "1,1,2", HitLevel: "h,h,m", Damage: "5,6,12", Startup: "i10", OnBlock: "-3", OnHit: "+8", OnCounterHit: "+8"},
		{Command: "ewgf", HitLevel: "h", Damage: "23", Startup: "i11", OnBlock: "+5", OnHit: "Launch", OnCounterHit: "Launch", Notes: "Electric"},
		{Command: "cd+4,1", HitLevel: "m,m", Damage: "12,15", Startup: "i15", OnBlock: "-12", OnHit: "KND", OnCounterHit: "KND"},
		{Command: "f+4", HitLevel: "m", Damage: "19", Startup: "i16~17", OnBlock: "-9", OnHit: "+3", OnCounterHit: "+3", Notes: "Homing"},
	},
}

func main() {
	var (
		addr    = flag.String("addr", ":9081", "Listen address")
		gameID  = flag.String("game", "tekken8", "Game id segment expected in request paths")
		latency = flag.Duration("latency", 0, "Artificial response delay")
	)
	flag.Parse()

	prefix := "/api/1/" + *gameID + "/movelist/"
	mux := http.NewServeMux()
	mux.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		if *latency > 0 {
			time.Sleep(*latency)
		}
		id := strings.TrimPrefix(r.URL.Path, prefix)
		moves, ok := fixtures[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(moves)
	})

	os.Stderr.WriteString("fixture upstream listening on " + *addr + "\n")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		os.Stderr.WriteString("fixture upstream failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
