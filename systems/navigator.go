package systems

import "fmt"

// Phase names one stage of the navigation pipeline.
type Phase string

const (
	PhaseScan      Phase = "scan"
	PhaseHistogram Phase = "histogram"
	PhaseSelect    Phase = "select"
	PhaseMotion    Phase = "motion"
)

// PipelinePhases returns the stages in the order Step runs them.
func PipelinePhases() []Phase {
	return []Phase{PhaseScan, PhaseHistogram, PhaseSelect, PhaseMotion}
}

// SimulationState is everything that changes between ticks.
type SimulationState struct {
	Pose   Pose
	Status Status
	Speed  float64
	Sector int // last selected sector, -1 before the first tick
	Tick   int32
}

// NewSimulationState returns a running state at the start pose.
func NewSimulationState(start Pose) SimulationState {
	return SimulationState{Pose: start, Status: StatusRunning, Sector: -1}
}

// TickResult is the output of one navigation tick.
type TickResult struct {
	State        SimulationState
	Scan         Scan
	Histogram    Histogram
	TargetSector int
}

// Navigator runs the scan, histogram, select and move pipeline. It holds no
// per-run state and is safe to reuse across runs.
type Navigator struct {
	params   Params
	sonar    *Sonar
	selector *Selector
	motion   *Motion
}

// NewNavigator validates params and builds the pipeline.
func NewNavigator(params Params) (*Navigator, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("creating navigator: %w", err)
	}
	return &Navigator{
		params:   params,
		sonar:    NewSonar(params.Sensor, params.Robot.Radius),
		selector: NewSelector(params.Sensor, params.Selector),
		motion:   NewMotion(params.Robot, params.Sensor, params.GoalRadius),
	}, nil
}

// Params returns the configuration the navigator was built with.
func (n *Navigator) Params() Params {
	return n.params
}

// Step advances state by one tick.
func (n *Navigator) Step(state SimulationState, world World) TickResult {
	return n.StepObserved(state, world, nil)
}

// StepObserved is Step with onPhase called as each stage begins.
// onPhase may be nil. A terminal state is returned unchanged.
func (n *Navigator) StepObserved(state SimulationState, world World, onPhase func(Phase)) TickResult {
	if state.Status.Terminal() {
		return TickResult{State: state, TargetSector: -1}
	}
	enter := func(p Phase) {
		if onPhase != nil {
			onPhase(p)
		}
	}

	enter(PhaseScan)
	scan := n.sonar.Scan(state.Pose, world)

	enter(PhaseHistogram)
	hist := BuildHistogram(scan.Distances, n.params.Sensor.StepLength)

	enter(PhaseSelect)
	robot := state.Pose.Position()
	targetSector := n.selector.TargetSector(robot, world.Target)
	sector, ok := n.selector.Select(hist, robot, world.Target)

	enter(PhaseMotion)
	pose, speed := n.motion.Step(sector, ok, state.Pose, world)

	next := state
	next.Pose = pose
	next.Speed = speed
	next.Tick++
	if ok {
		next.Sector = sector
	}
	next.Status = n.motion.Evaluate(pose, world)

	return TickResult{
		State:        next,
		Scan:         scan,
		Histogram:    hist,
		TargetSector: targetSector,
	}
}
