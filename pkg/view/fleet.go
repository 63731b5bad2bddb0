// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 tably Contributors

package view

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/tably/tably/pkg/config"
	"github.com/tably/tably/pkg/model"
	"github.com/tably/tably/pkg/sorting"
	"github.com/tably/tably/pkg/tablog"
	"github.com/tably/tably/pkg/ui"
)

const fleetViewName = "fleet"

// Instance lifecycle states.
const (
	statePending  = "pending"
	stateRunning  = "running"
	stateStopping = "stopping"
	stateStopped  = "stopped"
)

var fleetRegions = []string{"us-east-1", "us-west-2", "eu-west-1", "ap-southeast-2"}

// Fleet churn bounds.
const (
	fleetFloor = 10
	fleetCap   = 20
)

// instance represents a simulated fleet member backing one table row.
type instance struct {
	id     string
	name   string
	region string
	cpus   int
	mem    string
	state  string
	born   time.Time
}

// FleetView displays the instance fleet with sortable columns.
type FleetView struct {
	*ui.SortableTable

	app     *App
	cfg     *config.Tably
	adapter *model.Adapter
	fleet   []instance
	seq     int
	cancel  context.CancelFunc
	mx      sync.Mutex
}

// NewFleetView returns a new fleet view.
func NewFleetView(app *App, cfg *config.Tably) *FleetView {
	v := &FleetView{
		app:     app,
		cfg:     cfg,
		adapter: model.NewAdapter(nil),
		fleet:   seedFleet(),
	}
	v.seq = len(v.fleet)
	v.SortableTable = ui.NewSortableTable(fleetViewName, fleetHeader(), v.adapter)
	v.adapter.Set(v.hydrate())

	return v
}

// Init initializes the fleet view: column comparators, indicators, key
// bindings and the configured default sort.
func (v *FleetView) Init(ctx context.Context) error {
	if err := v.SortableTable.Init(ctx); err != nil {
		return err
	}

	h := v.Header()
	for col := range h {
		v.SetColumnComparator(col, model.ComparatorFor(h, col))
	}
	v.SetIndicatorProvider(ui.IndicatorsFor(v.cfg.Indicators))
	v.SetSortChangedFn(v.sortChanged)
	v.bindKeys(h)
	v.defaultSort(h)

	return nil
}

// Start begins the drift loop simulating fleet churn.
func (v *FleetView) Start() {
	v.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	v.mx.Lock()
	v.cancel = cancel
	v.mx.Unlock()

	go v.driftLoop(ctx, v.cfg.RefreshDur())
}

// Stop terminates the drift loop.
func (v *FleetView) Stop() {
	v.mx.Lock()
	defer v.mx.Unlock()

	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *FleetView) driftLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.app.QueueUpdateDraw(v.driftTick)
		}
	}
}

// driftTick mutates the fleet the way an inventory poll would and emits a
// single change notification. The sort controller recap keeps the table
// ordered.
func (v *FleetView) driftTick() {
	changed := v.drift() + v.churn()
	v.adapter.Set(v.hydrate())
	v.adapter.NotifyChanged()
	if changed > 0 {
		tablog.Zero.Debug().Int("instances", changed).Msg("fleet drift")
	}
}

// drift walks the fleet state machine one step.
func (v *FleetView) drift() int {
	var changed int
	for i := range v.fleet {
		inst := &v.fleet[i]
		switch inst.state {
		case statePending:
			inst.state = stateRunning
		case stateStopping:
			inst.state = stateStopped
		case stateRunning:
			if rand.Intn(20) != 0 {
				continue
			}
			inst.state = stateStopping
		case stateStopped:
			if rand.Intn(10) != 0 {
				continue
			}
			inst.state = statePending
			inst.born = time.Now()
		default:
			continue
		}
		changed++
	}

	return changed
}

// churn occasionally retires a stopped instance or enrolls a fresh one,
// keeping the fleet size between fleetFloor and fleetCap.
func (v *FleetView) churn() int {
	var changed int

	if len(v.fleet) > fleetFloor {
		for i := range v.fleet {
			if v.fleet[i].state != stateStopped || rand.Intn(15) != 0 {
				continue
			}
			v.fleet = append(v.fleet[:i], v.fleet[i+1:]...)
			changed++
			break
		}
	}

	if len(v.fleet) < fleetCap && rand.Intn(15) == 0 {
		v.seq++
		inst := newInstance(v.seq)
		inst.state = statePending
		inst.born = time.Now()
		v.fleet = append(v.fleet, inst)
		changed++
	}

	return changed
}

// hydrate renders the fleet into adapter rows.
func (v *FleetView) hydrate() model.Rows {
	h := fleetHeader()
	rows := make(model.Rows, 0, len(v.fleet))
	for _, inst := range v.fleet {
		row := model.NewRow(len(h))
		row.ID = inst.id
		row.Fields[0] = inst.name
		row.Fields[1] = inst.state
		row.Fields[2] = inst.region
		row.Fields[3] = strconv.Itoa(inst.cpus)
		row.Fields[4] = inst.mem
		row.Fields[5] = toAge(time.Since(inst.born))
		rows = append(rows, row)
	}

	return rows
}

// defaultSort applies the configured startup sort.
func (v *FleetView) defaultSort(h model.Header) {
	pref := v.cfg.DefaultSort
	col, ok := h.IndexOf(pref.Column, true)
	if !ok {
		tablog.Zero.Warn().Str("column", pref.Column).Msg("unknown default sort column")
		return
	}

	tablog.Zero.Debug().Stringer("column", h[col]).Bool("ascending", pref.Ascending).Msg("applying default sort")
	v.SortBy(col, pref.Ascending)
}

// sortChanged mirrors the active sort in the app status indicator.
func (v *FleetView) sortChanged(col string, state sorting.SortState) {
	if col == "" {
		v.app.indicator.Reset()
		return
	}
	v.app.indicator.SetSort(col, state)
}

// bindKeys maps digit keys to column sort toggles.
func (v *FleetView) bindKeys(h model.Header) {
	kk := ui.KeyMap{}
	for i, col := range h {
		kk[ui.Key1+tcell.Key(i)] = ui.NewKeyAction("Sort "+col.Name, v.sortColCmd(i), true)
	}
	v.Actions().Bulk(kk)
}

// sortColCmd toggles the column sort bound to a digit key.
func (v *FleetView) sortColCmd(col int) ui.ActionHandler {
	return func(evt *tcell.EventKey) *tcell.EventKey {
		v.Sort(col)
		return nil
	}
}

func fleetHeader() model.Header {
	return model.Header{
		{Name: "NAME"},
		{Name: "STATE"},
		{Name: "REGION"},
		{Name: "CPUS", Attrs: model.Attrs{Align: tview.AlignRight, Number: true}},
		{Name: "MEM", Attrs: model.Attrs{Align: tview.AlignRight, Capacity: true}},
		{Name: "AGE", Attrs: model.Attrs{Align: tview.AlignRight, Time: true}},
	}
}

// seedFleet builds the initial instance inventory.
func seedFleet() []instance {
	ff := make([]instance, 0, 15)
	for i := 0; i < 15; i++ {
		ff = append(ff, newInstance(i + 1))
	}

	return ff
}

// newInstance fabricates instance number n.
func newInstance(n int) instance {
	cpus := []int{2, 4, 8, 16, 32, 64}
	mems := []string{"512Mi", "1Gi", "2Gi", "4Gi", "8Gi", "16Gi", "32Gi"}

	state := stateRunning
	if rand.Intn(5) == 0 {
		state = stateStopped
	}

	return instance{
		id:     fmt.Sprintf("i-%04x", 0x1a2b+n*7),
		name:   fmt.Sprintf("host-%d", n),
		region: fleetRegions[(n-1)%len(fleetRegions)],
		cpus:   cpus[rand.Intn(len(cpus))],
		mem:    mems[rand.Intn(len(mems))],
		state:  state,
		born:   time.Now().Add(-time.Duration(rand.Intn(72)+1) * time.Hour),
	}
}

// toAge renders a duration as a compact age like 45s, 5m, 2h or 3d.
func toAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours())/24)
	}
}
