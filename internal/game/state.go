package game

import (
	"time"

	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/scene"
)

// Board poses, in degrees and cells.
const (
	placeTilt   = 45.0
	placeLift   = 4.5
	playTilt    = 15.0
	sideOn      = 90.0
	tiltRate    = 5.0
	turnRate    = 10.0
	liftRate    = 0.5
	maxAxisDone = 6
)

// nextState moves the state machine on after a finished action or
// animation.
func (l *Logic) nextState() {
	md := l.model
	switch md.State {
	case model.StateInit:
		l.menu.Close()
		md.State = model.StatePlaceShips
		md.Players[0].Ships[0].State = model.ShipPlacing
		md.Players[1].Ships[0].State = model.ShipPlacing

		for p := range md.Players {
			if !md.Players[p].AutoPlace {
				continue
			}
			if err := l.autoplaceShips(p); err != nil {
				l.fail(err)
				return
			}
		}
		md.Curr = 0

		if md.Players[0].AutoPlace && md.Players[1].AutoPlace {
			md.State = model.StatePlaying
			l.boardRotate(0, playTilt, turnRate)
			l.boardMove(1, 0, liftRate)
			if md.Players[0].AI.IsAI() {
				l.startAI()
			}
		} else {
			if md.Players[0].AutoPlace {
				l.switchPlayer(1)
			}
			l.boardRotate(0, placeTilt, tiltRate)
			l.boardMove(1, placeLift, liftRate)
		}
		l.log.Debug("game started", "p1", md.Players[0].AI, "p2", md.Players[1].AI, "demo", md.Demo)

	case model.StatePlaceShips:
		if md.Curr == 0 && !md.Players[1].AutoPlace {
			l.switchPlayer(1)
			return
		}
		md.State = model.StatePlaying
		l.boardRotate(0, playTilt, turnRate)
		l.boardMove(1, 0, liftRate)
		l.switchPlayer(0)
		if md.Players[0].AI.IsAI() {
			l.startAI()
		}

	case model.StatePlaying, model.StateAIPlaying:
		if md.Options.Rocket.Path != model.RocketOff {
			l.boardRotate(1, sideOn, turnRate)
		}
		l.view.ReadyRocket()
		l.startFireing()

	case model.StateFireing:
		md.GameOver = l.fire()
		l.startMessage()
		if md.Options.MessageAnimation && md.Options.Sound {
			l.sound.Play(md.Message.Cue())
		}

	case model.StateMessage:
		if md.GameOver {
			l.games++
			l.log.Info("game over", "winner", md.Current().Name, "shots", l.battle.Shots(md.Curr))
			if md.Demo {
				l.Restart()
				return
			}
			md.State = model.StateGameOver
			return
		}
		md.State = model.StatePlaying
		switch ai := md.Current().AI; {
		case !ai.IsAI():
			l.fixSelect(1, 0)
		case ai != model.EasyAI:
			l.aiFollowHit()
		}
		l.switchPlayer(1 - md.Curr)
		if md.Current().AI.IsAI() {
			l.startAI()
		}

	case model.StateGameOver:
		l.Restart()

	default:
		l.log.Error("unexpected state", "state", md.State)
	}
}

func (l *Logic) switchPlayer(p int) {
	if l.model.Curr == p {
		return
	}
	l.model.Curr = p
	to := 0.0
	if p == 1 {
		to = 180
	}
	l.boardRotate(1, to, turnRate)
}

func (l *Logic) boardMove(axis int, to, rate float64) {
	l.motion.tend[axis] = to
	if to > l.view.Translation(axis, scene.LayerGame) {
		l.motion.trate[axis] = rate
	} else {
		l.motion.trate[axis] = -rate
	}
	l.startTransition()
}

func (l *Logic) boardRotate(axis int, to, rate float64) {
	l.motion.rend[axis] = to
	if to > l.view.Rotation(axis, scene.LayerGame) {
		l.motion.rrate[axis] = rate
	} else {
		l.motion.rrate[axis] = -rate
	}
	l.startTransition()
}

// startTransition enters TRANSITION, remembering the state to return to.
// A transition already running picks up the new targets.
func (l *Logic) startTransition() {
	if l.model.State == model.StateTransition {
		return
	}
	l.saved = l.model.State
	l.model.State = model.StateTransition
	l.timers.Start(AnimationSpeed, l.animateTransition)
}

// enter switches to state and runs start, or queues both until the board
// transition in progress finishes.
func (l *Logic) enter(state model.GameState, start func()) {
	if l.model.State == model.StateTransition {
		l.saved = state
		l.deferred = start
		return
	}
	l.model.State = state
	start()
}

func (l *Logic) startAI() {
	l.enter(model.StateAIPlaying, func() {
		l.timers.Start(l.demoDelay(AISpeed), l.aiPlay)
	})
}

func (l *Logic) startFireing() {
	speed := AnimationSpeed + 80*time.Millisecond - time.Duration(l.model.Options.Rocket.Speed)*20*time.Millisecond
	l.enter(model.StateFireing, func() {
		l.rocket.Reset()
		l.timers.Start(speed, l.animateFireing)
	})
}

func (l *Logic) startMessage() {
	l.enter(model.StateMessage, func() {
		l.timers.Start(l.demoDelay(AnimationSpeed), l.animateMessage)
	})
}

func (l *Logic) demoDelay(d time.Duration) time.Duration {
	if l.model.Demo {
		return d + DemoDelay
	}
	return d
}

func (l *Logic) animateTransition() bool {
	if l.menu.Open() || !l.model.Options.BoardAnimation {
		l.cancel = true
	}

	done := 0
	for i := 0; i < 3; i++ {
		curr := l.view.Rotation(i, scene.LayerGame)
		if l.cancel || reached(l.motion.rrate[i], curr, l.motion.rend[i]) {
			l.view.SetRotate(i, l.motion.rend[i], scene.GameSet)
			done++
		} else {
			l.view.SetRotate(i, l.motion.rrate[i], scene.GameAdd)
		}

		curr = l.view.Translation(i, scene.LayerGame)
		if l.cancel || reached(l.motion.trate[i], curr, l.motion.tend[i]) {
			l.view.SetTranslate(i, l.motion.tend[i], scene.GameSet)
			done++
		} else {
			l.view.SetTranslate(i, l.motion.trate[i], scene.GameAdd)
		}
	}
	l.view.Refresh()
	l.cancel = false

	if done < maxAxisDone {
		return true
	}
	l.model.State = l.saved
	if start := l.deferred; start != nil {
		l.deferred = nil
		start()
	}
	return false
}

func reached(rate, curr, end float64) bool {
	return rate == 0 || (rate < 0 && curr <= end) || (rate > 0 && curr >= end)
}

func (l *Logic) animateFireing() bool {
	if l.menu.Open() || l.model.Options.Rocket.Path == model.RocketOff {
		l.cancel = true
	}
	l.view.Refresh()

	done := l.cancel || !l.rocket.Move()
	l.cancel = false
	if done {
		l.nextState()
	}
	return !done
}

func (l *Logic) animateMessage() bool {
	msg := &l.model.Message
	if l.menu.Open() || !l.model.Options.MessageAnimation {
		l.cancel = true
	}

	// A cancelled message gets one more tick at full size.
	if l.cancel && msg.Size < model.MaxMsgSize {
		msg.Size = model.MaxMsgSize
		l.view.Refresh()
		return true
	}
	if msg.Size < model.MaxMsgSize {
		msg.Size++
		l.view.Refresh()
	} else if msg.Delay < model.MaxMsgDelay {
		msg.Delay++
	}

	done := l.cancel || msg.Delay >= model.MaxMsgDelay
	if l.cancel {
		l.sound.Stop()
	}
	l.cancel = false
	if done {
		l.nextState()
	}
	return !done
}
