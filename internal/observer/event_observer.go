package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// TriageEvent represents a batch triage lifecycle event
type TriageEvent struct {
	EventType      EventType              `json:"event_type"`
	Timestamp      time.Time              `json:"timestamp"`
	BatchID        string                 `json:"batch_id"`
	ImageRef       string                 `json:"image_ref,omitempty"`
	ProcessingTime time.Duration          `json:"processing_time"`
	Success        bool                   `json:"success"`
	ErrorMessage   string                 `json:"error_message,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// EventType represents the type of triage event
type EventType string

const (
	// TriageStarted when a batch run begins
	TriageStarted EventType = "triage_started"
	// TriageCompleted when a batch run finishes successfully
	TriageCompleted EventType = "triage_completed"
	// TriageFailed when a batch run fails
	TriageFailed EventType = "triage_failed"
	// PaletteLoaded when an image's palette is materialized
	PaletteLoaded EventType = "palette_loaded"
	// PaletteLoadFailed when an image is substituted with an empty palette
	PaletteLoadFailed EventType = "palette_load_failed"
)

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event TriageEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(ctx context.Context, event TriageEvent)
}

// LoggingObserver logs triage events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent handles triage events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event TriageEvent) {
	fields := logrus.Fields{
		"event_type":      event.EventType,
		"batch_id":        event.BatchID,
		"processing_time": event.ProcessingTime,
		"success":         event.Success,
	}

	if event.ImageRef != "" {
		fields["image_ref"] = event.ImageRef
	}
	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}
	if event.Metadata != nil {
		for k, v := range event.Metadata {
			fields[k] = v
		}
	}

	entry := o.logger.WithFields(fields)
	if event.Success {
		entry.Info("Triage event")
	} else {
		entry.Warn("Triage event")
	}
}

// GetObserverName returns the observer name
func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// MetricsObserver collects counters from triage events
type MetricsObserver struct {
	mu                  sync.RWMutex
	totalBatches        int64
	successfulBatches   int64
	failedBatches       int64
	loadFailures        int64
	totalProcessingTime time.Duration
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

// OnEvent handles triage events by collecting metrics
func (o *MetricsObserver) OnEvent(ctx context.Context, event TriageEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case TriageStarted:
		o.totalBatches++
	case TriageCompleted:
		o.successfulBatches++
		o.totalProcessingTime += event.ProcessingTime
	case TriageFailed:
		o.failedBatches++
	case PaletteLoadFailed:
		o.loadFailures++
	}
}

// GetObserverName returns the observer name
func (o *MetricsObserver) GetObserverName() string {
	return "metrics_observer"
}

// GetMetrics returns current counters
func (o *MetricsObserver) GetMetrics() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	avgProcessingTime := time.Duration(0)
	if o.successfulBatches > 0 {
		avgProcessingTime = o.totalProcessingTime / time.Duration(o.successfulBatches)
	}

	return map[string]interface{}{
		"total_batches":         o.totalBatches,
		"successful_batches":    o.successfulBatches,
		"failed_batches":        o.failedBatches,
		"palette_load_failures": o.loadFailures,
		"total_processing_time": o.totalProcessingTime,
		"avg_processing_time":   avgProcessingTime,
	}
}

// EventPublisher implements the Subject interface
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher() Subject {
	return &EventPublisher{
		observers: make([]Observer, 0),
	}
}

// Subscribe adds an observer
func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes an observer
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, obs := range p.observers {
		if obs.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// NotifyObservers notifies all observers of an event
func (p *EventPublisher) NotifyObservers(ctx context.Context, event TriageEvent) {
	p.mu.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.RUnlock()

	// Notify observers concurrently
	for _, observer := range observers {
		go func(obs Observer) {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("observer", obs.GetObserverName()).
						WithField("panic", r).
						Error("Observer panicked while handling event")
				}
			}()
			obs.OnEvent(ctx, event)
		}(observer)
	}
}
