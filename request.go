// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// RequestKind tells the driving scheduler what a suspended thread wants.
type RequestKind uint8

const (
	// RequestYield moves the running thread to the back of the ready queue.
	RequestYield RequestKind = iota
	// RequestSchedule pushes Request.Node onto the ready queue.
	RequestSchedule
	// RequestStageUnschedule asks for the running thread's own node without
	// removing it from the ready queue.
	RequestStageUnschedule
	// RequestCompleteUnschedule drops the ready queue's slot for the running
	// thread. Ownership of the node must already have moved elsewhere.
	RequestCompleteUnschedule
)

// String returns the request name.
func (k RequestKind) String() string {
	switch k {
	case RequestYield:
		return "Yield"
	case RequestSchedule:
		return "Schedule"
	case RequestStageUnschedule:
		return "StageUnschedule"
	case RequestCompleteUnschedule:
		return "CompleteUnschedule"
	default:
		return "RequestKind(?)"
	}
}

// Request is the value a thread passes to its driver when it suspends.
// Node is set only for [RequestSchedule].
type Request[N any] struct {
	Kind RequestKind
	Node N
}

// ResponseKind describes the value a thread receives when resumed.
type ResponseKind uint8

const (
	// ResponseNothing carries no value.
	ResponseNothing ResponseKind = iota
	// ResponseUnscheduled carries a node that has left, or is leaving,
	// the ready queue.
	ResponseUnscheduled
)

// String returns the response name.
func (k ResponseKind) String() string {
	switch k {
	case ResponseNothing:
		return "Nothing"
	case ResponseUnscheduled:
		return "Unscheduled"
	default:
		return "ResponseKind(?)"
	}
}

// Response is the value a scheduler hands a thread on resume.
// Node is set only for [ResponseUnscheduled].
type Response[N any] struct {
	Kind ResponseKind
	Node N
}

func yieldRequest[N any]() Request[N] { return Request[N]{Kind: RequestYield} }

func scheduleRequest[N any](n N) Request[N] {
	return Request[N]{Kind: RequestSchedule, Node: n}
}

func nothing[N any]() Response[N] { return Response[N]{} }

func unscheduled[N any](n N) Response[N] {
	return Response[N]{Kind: ResponseUnscheduled, Node: n}
}
