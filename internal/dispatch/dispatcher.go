// internal/dispatch/dispatcher.go
package dispatch

import (
	"context"
	"log"
	"sync"
	"time"

	"tradie-receptionist/internal/calllog"
	"tradie-receptionist/internal/metrics"
	"tradie-receptionist/internal/model"
	"tradie-receptionist/internal/sms"
)

type jobKind int

const (
	jobLead jobKind = iota
	jobEmergency
	jobSummary
	jobSpamReport
	jobLastCaller
)

type job struct {
	kind    jobKind
	tenant  model.Tenant
	callID  string
	report  model.CallReport
	summary string
	body    string
}

type lastCaller struct {
	Name  string
	Phone string
}

// Dispatcher owns all cross-request mutable state: the per-call
// duplicate-suppression set, per-tenant spam counters and last-caller
// records. Deliveries run on a small worker pool so a slow SMS provider
// never stalls a webhook response.
type Dispatcher struct {
	sender   sms.Sender
	calls    *calllog.Store
	jobs     chan job
	stopCh   chan struct{}
	wg       sync.WaitGroup
	workers  int
	sendWait time.Duration

	mu          sync.Mutex
	notified    map[string]struct{}
	spamCounts  map[string]int
	lastCallers map[string]lastCaller
}

func NewDispatcher(sender sms.Sender, calls *calllog.Store, workers int) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	return &Dispatcher{
		sender:      sender,
		calls:       calls,
		jobs:        make(chan job, 64),
		stopCh:      make(chan struct{}),
		workers:     workers,
		sendWait:    15 * time.Second,
		notified:    make(map[string]struct{}),
		spamCounts:  make(map[string]int),
		lastCallers: make(map[string]lastCaller),
	}
}

// Start spawns the delivery workers.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	log.Printf("[dispatch] started %d delivery workers", d.workers)
}

// Stop signals the workers and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	close(d.stopCh)
	d.wg.Wait()
	log.Println("[dispatch] delivery workers stopped")
}

// HandleReport processes a structured end-of-call report from the agent.
// Spam calls are counted, never notified. Real leads are logged, retained as
// the tenant's last caller, and queued for SMS exactly once per callID.
func (d *Dispatcher) HandleReport(tenant model.Tenant, callID string, report model.CallReport) {
	d.calls.Append(tenant.ID, callID, report)

	if report.IsSpam {
		d.mu.Lock()
		d.spamCounts[tenant.ID]++
		count := d.spamCounts[tenant.ID]
		// A spam call still consumes its callID so a later ended event
		// does not notify for it.
		d.markNotifiedLocked(callID)
		d.mu.Unlock()

		metrics.SpamBlocked.WithLabelValues(tenant.ID).Inc()
		log.Printf("[dispatch] spam blocked for %s (total today: %d)", tenant.Name, count)
		return
	}

	d.mu.Lock()
	d.lastCallers[tenant.ID] = lastCaller{Name: report.CallerName, Phone: report.CallerPhone}
	fresh := d.markNotifiedLocked(callID)
	d.mu.Unlock()

	if !fresh {
		log.Printf("[dispatch] duplicate report for call %s ignored", callID)
		return
	}

	kind := jobLead
	if report.Urgency == model.UrgencyEmergency {
		kind = jobEmergency
	}
	d.enqueue(job{kind: kind, tenant: tenant, callID: callID, report: report})
}

// HandleCallEnded processes an end-of-call event. The transcript is attached
// to the audit trail; a summary SMS is queued only when no report already
// notified this callID, and never twice.
func (d *Dispatcher) HandleCallEnded(tenant model.Tenant, callID, summary, transcript string, duration float64) {
	d.calls.AttachTranscript(callID, transcript, summary, duration)

	d.mu.Lock()
	fresh := d.markNotifiedLocked(callID)
	d.mu.Unlock()

	if !fresh {
		log.Printf("[dispatch] call %s already notified, skipping", callID)
		return
	}

	d.enqueue(job{kind: jobSummary, tenant: tenant, callID: callID, summary: summary})
}

// NotifyLastCaller queues the reply to a CALL command. Returns false when no
// caller has been recorded for the tenant yet.
func (d *Dispatcher) NotifyLastCaller(tenant model.Tenant) bool {
	d.mu.Lock()
	last, ok := d.lastCallers[tenant.ID]
	d.mu.Unlock()
	if !ok {
		return false
	}

	d.enqueue(job{kind: jobLastCaller, tenant: tenant, body: sms.LastCallerBody(last.Name, last.Phone)})
	return true
}

// SpamCount reports how many spam calls were blocked for a tenant since the
// last flush.
func (d *Dispatcher) SpamCount(tenantID string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.spamCounts[tenantID]
}

// FlushSpamReports sends the daily spam summary to every tenant with blocked
// calls and resets the counters.
func (d *Dispatcher) FlushSpamReports(tenants []model.Tenant) {
	for _, t := range tenants {
		d.mu.Lock()
		count := d.spamCounts[t.ID]
		if count > 0 {
			d.spamCounts[t.ID] = 0
		}
		d.mu.Unlock()

		if count > 0 {
			d.enqueue(job{kind: jobSpamReport, tenant: t, body: sms.SpamReportBody(count)})
		}
	}
}

// markNotifiedLocked inserts the callID into the suppression set, reporting
// whether it was absent. Empty callIDs are never suppressed.
func (d *Dispatcher) markNotifiedLocked(callID string) bool {
	if callID == "" {
		return true
	}
	if _, seen := d.notified[callID]; seen {
		return false
	}
	d.notified[callID] = struct{}{}
	return true
}

func (d *Dispatcher) enqueue(j job) {
	select {
	case d.jobs <- j:
	default:
		// Queue full. Dropping is preferable to blocking the webhook
		// handler past the platform's response deadline.
		metrics.SMSFailed.WithLabelValues(j.tenant.ID).Inc()
		log.Printf("[dispatch] queue full, dropped notification for tenant %s", j.tenant.ID)
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case <-d.stopCh:
			return
		case j := <-d.jobs:
			d.deliver(j)
		}
	}
}

func (d *Dispatcher) deliver(j job) {
	body := j.body
	switch j.kind {
	case jobLead:
		body = sms.JobLeadBody(j.report, time.Now())
	case jobEmergency:
		body = sms.EmergencyAlertBody(j.report)
	case jobSummary:
		body = sms.CallSummaryBody(j.summary, time.Now())
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.sendWait)
	defer cancel()

	sid, err := d.sender.Send(ctx, j.tenant.PersonalPhone, body)
	if err != nil {
		// Non-fatal: the inbound event was already acknowledged.
		metrics.SMSFailed.WithLabelValues(j.tenant.ID).Inc()
		log.Printf("[dispatch] SMS failed for %s: %v", j.tenant.Name, err)
		return
	}

	metrics.SMSSent.WithLabelValues(j.tenant.ID).Inc()
	log.Printf("[dispatch] SMS sent to %s (SID: %s)", j.tenant.Name, sid)
}
