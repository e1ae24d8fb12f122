package game

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

type SoundData struct {
	raw []byte
}

// AudioManager plays the game's effects and music. Every sound has a
// synthesized fallback so the game works without asset files.
type AudioManager struct {
	ctx         *audio.Context
	sfxVolume   float64
	musicVolume float64

	collect   *SoundData
	hit       *SoundData
	chase     *SoundData
	easterEgg *SoundData
	win       *SoundData

	menuMusic     *SoundData
	gameplayMusic *SoundData

	musicPlayer  *audio.Player
	currentMusic string
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func getAudioContext() *audio.Context {
	// Audio is DISABLED by default. Enable explicitly with HAUNT_ENABLE_AUDIO=1.
	if os.Getenv("HAUNT_DISABLE_AUDIO") == "1" {
		return nil
	}
	if os.Getenv("HAUNT_ENABLE_AUDIO") != "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(44100)
	})
	return audioCtx
}

func NewAudioManager(soundsDir string, musicVolume, sfxVolume float64) *AudioManager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	am := &AudioManager{ctx: getAudioContext(), musicVolume: musicVolume, sfxVolume: sfxVolume}

	am.collect = loadOrSynth(soundsDir, "collect.wav", 60, 880)
	am.hit = loadOrSynth(soundsDir, "hit.wav", 200, 220)
	am.chase = loadOrSynth(soundsDir, "ghost.wav", 150, 330)
	am.easterEgg = loadOrSynth(soundsDir, "easter_egg.wav", 150, 990)
	am.win = loadOrSynth(soundsDir, "win.wav", 400, 660)

	// Music has no synthesized fallback; missing tracks play silence.
	am.menuMusic, _ = loadSoundData(soundsDir, "main-menu.wav")
	am.gameplayMusic, _ = loadSoundData(soundsDir, "game-time.wav")
	return am
}

func loadOrSynth(dir, file string, durationMs int, freq float64) *SoundData {
	if sd, _ := loadSoundData(dir, file); sd != nil {
		return sd
	}
	return &SoundData{raw: synthBeepWAV(44100, durationMs, freq)}
}

func loadSoundData(dir, file string) (*SoundData, error) {
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}
	return &SoundData{raw: b}, nil
}

func (am *AudioManager) play(sd *SoundData) {
	if am == nil || am.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode from bytes each time to allow overlapping plays
	stream, err := wav.Decode(am.ctx, bytes.NewReader(sd.raw))
	if err != nil {
		return
	}
	p, err := audio.NewPlayer(am.ctx, stream)
	if err != nil {
		return
	}
	p.SetVolume(am.sfxVolume)
	p.Play()
}

// SetVolumes updates both channels, including the track already playing.
func (am *AudioManager) SetVolumes(music, sfx float64) {
	if am == nil {
		return
	}
	am.musicVolume = music
	am.sfxVolume = sfx
	if am.musicPlayer != nil {
		am.musicPlayer.SetVolume(music)
	}
}

func (am *AudioManager) PlayCollect()   { am.play(am.collect) }
func (am *AudioManager) PlayHit()       { am.play(am.hit) }
func (am *AudioManager) PlayChase()     { am.play(am.chase) }
func (am *AudioManager) PlayEasterEgg() { am.play(am.easterEgg) }
func (am *AudioManager) PlayWin()       { am.play(am.win) }

// PlayMenuMusic switches to the menu track. Switching to the track already
// playing is a no-op.
func (am *AudioManager) PlayMenuMusic() { am.switchMusic("menu", am.menuMusic) }

// PlayGameplayMusic switches to the in-game track.
func (am *AudioManager) PlayGameplayMusic() { am.switchMusic("gameplay", am.gameplayMusic) }

func (am *AudioManager) switchMusic(name string, sd *SoundData) {
	if am == nil || am.ctx == nil {
		return
	}
	if am.currentMusic == name {
		return
	}
	if am.musicPlayer != nil {
		_ = am.musicPlayer.Close()
		am.musicPlayer = nil
	}
	am.currentMusic = name
	if sd == nil || len(sd.raw) == 0 {
		return
	}
	stream, err := wav.Decode(am.ctx, bytes.NewReader(sd.raw))
	if err != nil {
		return
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	p, err := audio.NewPlayer(am.ctx, loop)
	if err != nil {
		return
	}
	p.SetVolume(am.musicVolume)
	p.Play()
	am.musicPlayer = p
}

// synthBeepWAV returns a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate int, durationMs int, freq float64) []byte {
	numSamples := int(float64(sampleRate) * float64(durationMs) / 1000.0)
	byteRate := sampleRate * 2 // mono 16-bit
	blockAlign := 2
	dataSize := numSamples * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)
	// RIFF header
	copy(buf[0:4], []byte{'R', 'I', 'F', 'F'})
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], []byte{'W', 'A', 'V', 'E'})
	// fmt chunk
	copy(buf[12:16], []byte{'f', 'm', 't', ' '})
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(byteRate))
	putLE16(buf[32:34], uint16(blockAlign))
	putLE16(buf[34:36], 16) // bits per sample
	// data chunk
	copy(buf[36:40], []byte{'d', 'a', 't', 'a'})
	putLE32(buf[40:44], uint32(dataSize))
	amp := 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		s := math.Sin(2 * math.Pi * freq * t)
		v := int16(s * 32767.0 * amp)
		off := 44 + i*2
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
