package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-alphabeta/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-alphabeta/internal/entity"
)

var (
	ErrNoMoveApplied = errors.New("ai did not apply a move")

	errNotANumber = errors.New("not a number")
)

type moveSelector interface {
	SelectAndApplyMove(aiSide entity.Mark, board *entity.Board) error
}

// Settings fix the parts of a session that are not asked for interactively.
type Settings struct {
	AIMark entity.Mark
	// BoardSize skips the size prompt when greater than zero.
	BoardSize int
}

// Controller runs games between a human on the console and the AI.
type Controller struct {
	logger   *slog.Logger
	ai       moveSelector
	settings Settings

	input  *bufio.Scanner
	output io.Writer
}

func NewController(logger *slog.Logger, ai moveSelector, settings Settings, input io.Reader, output io.Writer) *Controller {
	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)

	return &Controller{
		logger:   logger.With("component", "console"),
		ai:       ai,
		settings: settings,
		input:    scanner,
		output:   output,
	}
}

// Run plays games until the human declines to continue, the input ends or ctx is done.
func (that *Controller) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	if !that.settings.AIMark.IsPlayer() {
		return fmt.Errorf("%w: ai mark %s", entity.ErrInvalidMark, that.settings.AIMark)
	}

	err := that.run(ctx)
	switch {
	case err == nil:
		log.Info("session finished")
		return nil
	case errors.Is(err, io.EOF):
		log.Info("input closed, session finished")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("session interrupted")
		return nil
	default:
		return err
	}
}

func (that *Controller) run(ctx context.Context) error {
	for {
		board, err := that.newBoard(ctx)
		if err != nil {
			return err
		}

		if err = that.play(ctx, board); err != nil {
			return err
		}

		that.println("\nWould you like to continue?(default=Y)[Y/n]")
		answer, err := that.next(ctx)
		if err != nil {
			return err
		}

		if strings.EqualFold(answer, "n") {
			return nil
		}
	}
}

func (that *Controller) newBoard(ctx context.Context) (*entity.Board, error) {
	if that.settings.BoardSize > 0 {
		board, err := entity.NewBoard(that.settings.BoardSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create board: %w", err)
		}

		return board, nil
	}

	that.println("Enter the field size: ")
	for {
		size, err := that.nextInt(ctx)
		if errors.Is(err, errNotANumber) {
			continue
		}
		if err != nil {
			return nil, err
		}

		board, err := entity.NewBoard(size)
		if errors.Is(err, apperror.ErrInvalidParameter) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create board: %w", err)
		}

		return board, nil
	}
}

func (that *Controller) play(ctx context.Context, board *entity.Board) error {
	log := that.logger.With("method", "play")

	that.println("Starting a new game")
	that.println("Would you like to start first?(default=Y)[Y/n]")

	answer, err := that.next(ctx)
	if err != nil {
		return err
	}

	first := that.settings.AIMark.Opponent()
	if strings.EqualFold(answer, "n") {
		first = that.settings.AIMark
	}

	if err = board.SetTurn(first); err != nil {
		return fmt.Errorf("failed to set first turn: %w", err)
	}

	log.Debug("game started", "size", board.Size(), "first", first.String(), "ai", that.settings.AIMark.String())

	for !board.IsFinished() {
		that.printStatus(board)

		if board.Turn() == that.settings.AIMark {
			err = that.makeAIMove(board)
		} else {
			err = that.makeHumanMove(ctx, board)
		}

		if err != nil {
			return err
		}
	}

	that.printWinner(board)
	log.Debug("game finished", "winner", board.Winner().String())

	return nil
}

func (that *Controller) makeAIMove(board *entity.Board) error {
	before := len(board.AvailablePositions())

	if err := that.ai.SelectAndApplyMove(that.settings.AIMark, board); err != nil {
		return fmt.Errorf("ai failed to make move: %w", err)
	}

	if len(board.AvailablePositions()) == before {
		return ErrNoMoveApplied
	}

	return nil
}

func (that *Controller) makeHumanMove(ctx context.Context, board *entity.Board) error {
	log := that.logger.With("method", "makeHumanMove")

	for {
		that.println("Please, write x and y (Use whitespace or enter between numbers):")

		x, err := that.nextInt(ctx)
		if errors.Is(err, errNotANumber) {
			continue
		}
		if err != nil {
			return err
		}

		y, err := that.nextInt(ctx)
		if errors.Is(err, errNotANumber) {
			continue
		}
		if err != nil {
			return err
		}

		// the console counts from 1
		move := entity.Coordinates{X: x - 1, Y: y - 1}

		err = board.MakeMove(move)
		if errors.Is(err, apperror.ErrInvalidParameter) {
			log.Debug("move rejected", "move", move.String(), "error", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to make move: %w", err)
		}

		return nil
	}
}

func (that *Controller) printStatus(board *entity.Board) {
	that.println("\nCurrent Board state:")
	that.println(board.String())
	that.println("It is turn of " + board.Turn().String() + "\n")
}

func (that *Controller) printWinner(board *entity.Board) {
	that.println("\n" + board.String() + "\n")
	that.println(board.Winner().String())
}

func (that *Controller) println(line string) {
	fmt.Fprintln(that.output, line)
}

// next returns the next whitespace separated token of the input.
func (that *Controller) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !that.input.Scan() {
		if err := that.input.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return that.input.Text(), nil
}

func (that *Controller) nextInt(ctx context.Context) (int, error) {
	token, err := that.next(ctx)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, token)
	}

	return value, nil
}
