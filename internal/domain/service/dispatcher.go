package service

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/contract"
	"github.com/zey-2/tg-prog-foundation-bot/internal/domain/entity"
)

// Dispatcher owns the runtime lifecycle of reminder delivery. It holds
// the pending events planned from the current schedule store, sleeps
// until the nearest one is due and hands it to the notifier, writing the
// firing record first so an event can never fire twice, even across
// process restarts.
//
// The pending set and the firing record are mutated only from the
// dispatcher's own loop; reloads enter through a channel to keep the
// single-writer discipline.
type Dispatcher struct {
	dm       contract.DataManager
	notifier contract.Notifier
	clk      contract.Clock
	dryRun   bool
	log      *logrus.Entry

	course  *entity.Course
	pending []entity.ReminderEvent

	reloadChan chan *entity.Course
	stopChan   chan struct{}
	running    bool
}

func NewDispatcher(dm contract.DataManager, notifier contract.Notifier, clk contract.Clock, course *entity.Course, dryRun bool) *Dispatcher {
	return &Dispatcher{
		dm:         dm,
		notifier:   notifier,
		clk:        clk,
		dryRun:     dryRun,
		log:        logrus.WithField("component", "dispatcher"),
		course:     course,
		reloadChan: make(chan *entity.Course),
		stopChan:   make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	if d.running {
		return
	}
	d.running = true
	d.rebuild(d.course)
	go d.mainLoop()
}

func (d *Dispatcher) Stop() {
	if !d.running {
		return
	}
	d.log.Info("dispatcher stopping")
	close(d.stopChan)
	d.running = false
}

// Reload hands a freshly built schedule store to the dispatcher. The
// loop cancels its current wait, re-plans from scratch and filters out
// everything already recorded, so recorded events never fire again.
func (d *Dispatcher) Reload(course *entity.Course) {
	d.reloadChan <- course
}

func (d *Dispatcher) mainLoop() {
	for {
		if len(d.pending) == 0 {
			select {
			case course := <-d.reloadChan:
				d.rebuild(course)
			case <-d.stopChan:
				return
			}
			continue
		}

		next := d.pending[0]
		wait := next.FireAt.Sub(d.clk.Now())
		if wait <= 0 {
			d.pending = d.pending[1:]
			go d.fire(d.course, next)
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
			d.pending = d.pending[1:]
			// Delivery runs off the loop so a slow or failing send can
			// never push the next event's wait past its own fire time.
			go d.fire(d.course, next)

		case course := <-d.reloadChan:
			timer.Stop()
			d.rebuild(course)

		case <-d.stopChan:
			timer.Stop()
			return
		}
	}
}

// rebuild replaces the schedule store and re-plans the pending set,
// dropping events the firing record already covers.
func (d *Dispatcher) rebuild(course *entity.Course) {
	now := d.clk.Now()
	d.course = course
	d.logMissed(course, now)

	var pending []entity.ReminderEvent
	for _, ev := range Plan(course, now) {
		fired, err := d.dm.Firing().Exists(ev.SessionID, ev.Kind)
		if err != nil {
			// Keep the event; the firing step re-checks before delivery.
			d.log.WithError(err).Error("could not consult firing record while planning")
		}
		if !fired {
			pending = append(pending, ev)
		}
	}
	d.pending = pending

	d.log.WithFields(logrus.Fields{
		"sessions": len(course.Sessions),
		"pending":  len(pending),
	}).Info("reminder schedule planned")
}

// logMissed surfaces the accepted trade-off of record-before-send: an
// event whose window passed without a firing record was missed, not
// delivered twice. Missed events are dropped, never fired late.
func (d *Dispatcher) logMissed(course *entity.Course, now time.Time) {
	cutoff := now.Add(-domain.DueGrace)
	for _, s := range course.Sessions {
		events := []entity.ReminderEvent{
			{SessionID: s.ID, Kind: entity.KindPreSession, FireAt: s.StartAt.Add(-domain.ReminderLead)},
			{SessionID: s.ID, Kind: entity.KindSessionEnd, FireAt: s.EndAt},
		}
		for _, ev := range events {
			if !ev.FireAt.Before(cutoff) {
				continue
			}
			fired, err := d.dm.Firing().Exists(ev.SessionID, ev.Kind)
			if err != nil || fired {
				continue
			}
			d.log.WithFields(logrus.Fields{
				"session_id": ev.SessionID,
				"kind":       string(ev.Kind),
				"fire_at":    ev.FireAt,
			}).Warn("reminder window passed without a firing record; dropping it")
		}
	}
}

// fire performs the firing step for one due event: claim the firing
// record, then deliver to every current subscriber. The record is
// written before any delivery attempt, so a crash mid-batch costs at
// most one missed reminder, never a duplicate.
func (d *Dispatcher) fire(course *entity.Course, ev entity.ReminderEvent) {
	log := d.log.WithFields(logrus.Fields{
		"session_id": ev.SessionID,
		"kind":       string(ev.Kind),
	})

	claimed, err := d.dm.Firing().Record(ev.SessionID, ev.Kind, d.clk.Now())
	if err != nil {
		log.WithError(err).Error("could not write firing record; skipping delivery")
		return
	}
	if !claimed {
		log.Debug("event already recorded, skipping")
		return
	}

	session, ok := course.SessionByID(ev.SessionID)
	if !ok {
		log.Warn("session not found for reminder")
		return
	}

	chatIDs, err := d.dm.Subscriber().ListActive()
	if err != nil {
		log.WithError(err).Error("could not list subscribers")
		return
	}
	if len(chatIDs) == 0 {
		log.Info("no subscribers to notify")
		return
	}

	delivered := 0
	for _, chatID := range chatIDs {
		if d.dryRun {
			log.WithFields(logrus.Fields{
				"chat_id": chatID,
				"lecture": session.Lecture,
			}).Info("dry-run: reminder suppressed")
			continue
		}
		if err := d.notifier.SendReminder(chatID, course, session, ev.Kind); err != nil {
			log.WithError(err).WithField("chat_id", chatID).Warn("failed to deliver reminder")
			continue
		}
		delivered++
	}

	if !d.dryRun {
		log.WithFields(logrus.Fields{
			"recipients": len(chatIDs),
			"delivered":  delivered,
		}).Info("reminder dispatched")
	}
}
