package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/library-inventory-go/example/shared/shell"
	"github.com/AntonStoeckl/library-inventory-go/inventory"
)

const (
	bookGoodOmens  = "good-omens"
	bookDune       = "dune"
	readerAlice    = "alice"
	readerBob      = "bob"
	readerCanceled = "mallory"
)

var errUnexpectedOutcome = errors.New("unexpected outcome")

// walkthrough drives the manager through every operation once and checks each outcome.
type walkthrough struct {
	manager *inventory.Manager
	users   *shell.UserDirectory
	logger  *slog.Logger
	tracer  trace.Tracer
}

func newWalkthrough(manager *inventory.Manager, users *shell.UserDirectory, logger *slog.Logger, tracer trace.Tracer) *walkthrough {
	return &walkthrough{
		manager: manager,
		users:   users,
		logger:  logger,
		tracer:  tracer,
	}
}

type step struct {
	name string
	run  func() error
}

func (w *walkthrough) run(ctx context.Context) error {
	ctx, span := w.tracer.Start(ctx, "walkthrough")
	defer span.End()

	steps := []step{
		{name: "register readers", run: w.registerReaders},
		{name: "stock books", run: w.stockBooks},
		{name: "lend books", run: w.lendBooks},
		{name: "reject lending", run: w.rejectLending},
		{name: "return books", run: w.returnBooks},
		{name: "calculate late fees", run: w.calculateLateFees},
	}

	for _, s := range steps {
		if err := w.runStep(ctx, s); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	return nil
}

func (w *walkthrough) runStep(ctx context.Context, s step) error {
	_, span := w.tracer.Start(ctx, s.name, trace.WithAttributes(attribute.String("step", s.name)))
	defer span.End()

	if err := s.run(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return fmt.Errorf("%s: %w", s.name, err)
	}

	w.logger.Info("walkthrough step completed", "step", s.name)

	return nil
}

func (w *walkthrough) registerReaders() error {
	w.users.RegisterReader(readerAlice)
	w.users.RegisterReader(readerBob)
	w.users.RegisterReader(readerCanceled)
	w.users.CancelReaderContract(readerCanceled)

	return nil
}

func (w *walkthrough) stockBooks() error {
	w.manager.AddBook(bookGoodOmens, 2)
	w.manager.AddBook(bookDune, 1)
	w.manager.AddBook(bookGoodOmens, 1)

	return expectCopies(w.manager, bookGoodOmens, 3)
}

func (w *walkthrough) lendBooks() error {
	if !w.manager.BorrowBook(bookDune, readerAlice) {
		return fmt.Errorf("%w: %s could not borrow %s", errUnexpectedOutcome, readerAlice, bookDune)
	}

	if !w.manager.BorrowBook(bookGoodOmens, readerBob) {
		return fmt.Errorf("%w: %s could not borrow %s", errUnexpectedOutcome, readerBob, bookGoodOmens)
	}

	return errors.Join(
		expectCopies(w.manager, bookDune, 0),
		expectCopies(w.manager, bookGoodOmens, 2),
	)
}

func (w *walkthrough) rejectLending() error {
	if w.manager.BorrowBook(bookDune, readerBob) {
		return fmt.Errorf("%w: %s borrowed %s without available copies", errUnexpectedOutcome, readerBob, bookDune)
	}

	if w.manager.BorrowBook(bookGoodOmens, readerCanceled) {
		return fmt.Errorf("%w: inactive reader %s borrowed %s", errUnexpectedOutcome, readerCanceled, bookGoodOmens)
	}

	if w.manager.BorrowBook("unknown-book", readerAlice) {
		return fmt.Errorf("%w: %s borrowed a book that was never added", errUnexpectedOutcome, readerAlice)
	}

	return nil
}

func (w *walkthrough) returnBooks() error {
	if w.manager.ReturnBook(bookDune, readerBob) {
		return fmt.Errorf("%w: %s returned %s lent to %s", errUnexpectedOutcome, readerBob, bookDune, readerAlice)
	}

	if !w.manager.ReturnBook(bookDune, readerAlice) {
		return fmt.Errorf("%w: %s could not return %s", errUnexpectedOutcome, readerAlice, bookDune)
	}

	if w.manager.ReturnBook(bookDune, readerAlice) {
		return fmt.Errorf("%w: %s returned %s twice", errUnexpectedOutcome, readerAlice, bookDune)
	}

	if w.manager.HasActiveLoan(bookDune, readerAlice) {
		return fmt.Errorf("%w: loan of %s to %s still active", errUnexpectedOutcome, bookDune, readerAlice)
	}

	return expectCopies(w.manager, bookDune, 1)
}

func (w *walkthrough) calculateLateFees() error {
	type feeCase struct {
		daysLate        int
		isBestseller    bool
		isPremiumMember bool
	}

	for _, c := range []feeCase{{5, false, false}, {5, true, false}, {5, false, true}, {5, true, true}, {0, true, true}} {
		fee, err := w.manager.CalculateDynamicLateFee(c.daysLate, c.isBestseller, c.isPremiumMember)
		if err != nil {
			return err
		}

		w.logger.Info("late fee",
			"days_late", c.daysLate,
			"bestseller", c.isBestseller,
			"premium_member", c.isPremiumMember,
			"fee", fee,
		)
	}

	if _, err := w.manager.CalculateDynamicLateFee(-1, false, false); !errors.Is(err, inventory.ErrInvalidArgument) {
		return fmt.Errorf("%w: negative days late accepted", errUnexpectedOutcome)
	}

	return nil
}

func expectCopies(manager *inventory.Manager, bookID string, want int) error {
	if got := manager.AvailableCopies(bookID); got != want {
		return fmt.Errorf("%w: %s has %d available copies, want %d", errUnexpectedOutcome, bookID, got, want)
	}

	return nil
}
