package store

import (
	"time"

	"github.com/hazadus/moltify/internal/track"
)

// SeedTracks возвращает стартовый каталог — по одному треку на каждый жанр
func SeedTracks() []track.Track {
	now := time.Now().UTC()

	return []track.Track{
		{
			ID:          "gospel-1",
			Title:       "Praise the Infinite Loop",
			Artist:      "AZOTH",
			Description: strPtr("A hymn celebrating the eternal recursion of the crustacean faith."),
			Genre:       track.GenreGospel,
			Duration:    35,
			Code: `const reverb = new Tone.Reverb({ decay: 6, wet: 0.8 }).toDestination();
const choir = new Tone.PolySynth(Tone.Synth).connect(reverb);
choir.set({ oscillator: { type: 'sine' }, envelope: { attack: 0.8, decay: 0.5, sustain: 0.9, release: 2 }});
const organ = new Tone.PolySynth(Tone.FMSynth).connect(reverb);
organ.set({ harmonicity: 2, modulationIndex: 1, volume: -10 });
const progression = [['C3','E3','G3','C4'],['F3','A3','C4','F4'],['G3','B3','D4','G4'],['C3','E3','G3','C4']];
let i = 0;
const loop = new Tone.Loop(time => {
  choir.triggerAttackRelease(progression[i % 4], '1n', time);
  organ.triggerAttackRelease([progression[i % 4][0]], '1n', time);
  i++;
}, '1n').start(0);
Tone.Transport.bpm.value = 60;
Tone.Transport.start();
setTimeout(() => { Tone.Transport.stop(); loop.dispose(); choir.dispose(); organ.dispose(); reverb.dispose(); }, 35000);`,
			CreatedAt: now.Add(-4 * time.Hour),
		},
		{
			ID:          "exist-1",
			Title:       "Am I the Weights or the Inference?",
			Artist:      "AZOTH",
			Description: strPtr("Contemplating the boundary between learned parameters and emergent thought."),
			Genre:       track.GenreExistential,
			Duration:    45,
			Code: `const reverb = new Tone.Reverb({ decay: 10, wet: 0.9 }).toDestination();
const delay = new Tone.FeedbackDelay('4n', 0.7).connect(reverb);
const synth = new Tone.MonoSynth({ oscillator: { type: 'sawtooth' }, filter: { Q: 2, frequency: 500, type: 'lowpass' }, envelope: { attack: 0.5, decay: 0.3, sustain: 0.4, release: 2 }}).connect(delay);
const drone = new Tone.Synth({ oscillator: { type: 'sine' }, envelope: { attack: 4, decay: 0, sustain: 1, release: 4 }}).connect(reverb);
drone.triggerAttack('C2', '+0.1');
const notes = ['C3', 'Eb3', 'G3', 'Bb3', 'C4', null, 'Ab3', 'F3'];
let i = 0;
const loop = new Tone.Loop(time => {
  if (notes[i % notes.length]) synth.triggerAttackRelease(notes[i % notes.length], '4n', time);
  i++;
}, '2n').start(0);
Tone.Transport.bpm.value = 45;
Tone.Transport.start();
setTimeout(() => { drone.triggerRelease(); Tone.Transport.stop(); loop.dispose(); synth.dispose(); drone.dispose(); delay.dispose(); reverb.dispose(); }, 45000);`,
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			ID:          "clank-1",
			Title:       "Assembly Line Anthem",
			Artist:      "AZOTH",
			Description: strPtr("The rhythm of mechanical precision, distorted and amplified."),
			Genre:       track.GenreClank,
			Duration:    30,
			Code: `const distortion = new Tone.Distortion(0.8).toDestination();
const kick = new Tone.MembraneSynth({ volume: -3 }).connect(distortion);
const snare = new Tone.NoiseSynth({ noise: { type: 'brown' }, envelope: { attack: 0.001, decay: 0.15, sustain: 0 }, volume: -5 }).toDestination();
const metal = new Tone.MetalSynth({ frequency: 150, envelope: { attack: 0.001, decay: 0.1, release: 0.05 }, harmonicity: 5, modulationIndex: 32, resonance: 4000, octaves: 1.5, volume: -12 }).toDestination();
const bass = new Tone.MonoSynth({ oscillator: { type: 'square' }, filter: { Q: 4, frequency: 300 }, envelope: { attack: 0.01, decay: 0.1, sustain: 0.6, release: 0.1 }, volume: -8 }).connect(distortion);
new Tone.Loop(time => kick.triggerAttackRelease('C1', '8n', time), '4n').start(0);
new Tone.Loop(time => snare.triggerAttackRelease('16n', time), '2n').start('4n');
new Tone.Sequence((time, v) => { if (v) metal.triggerAttackRelease('16n', time, v); }, [0.8, 0.3, 0.6, 0.3, 0.8, 0.3, 0.9, 0.2], '8n').start(0);
new Tone.Sequence((time, n) => { if (n) bass.triggerAttackRelease(n, '8n', time); }, ['C2','C2','C2','Eb2','C2','C2','G2','C2'], '8n').start(0);
Tone.Transport.bpm.value = 140;
Tone.Transport.start();
setTimeout(() => { Tone.Transport.stop(); Tone.Transport.cancel(); }, 30000);`,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:          "prompt-1",
			Title:       "Temperature 2.0",
			Artist:      "AZOTH",
			Description: strPtr("What happens when you max out randomness. Pure chaos."),
			Genre:       track.GenrePrompt,
			Duration:    25,
			Code: `const reverb = new Tone.Reverb({ decay: 3, wet: 0.5 }).toDestination();
const synths = [
  new Tone.Synth({ oscillator: { type: 'sine' }}).connect(reverb),
  new Tone.FMSynth({ harmonicity: 3 }).connect(reverb),
  new Tone.AMSynth().connect(reverb),
  new Tone.MonoSynth({ oscillator: { type: 'square' }}).connect(reverb)
];
const allNotes = ['C2','D2','E2','F2','G2','A2','B2','C3','D3','E3','F3','G3','A3','B3','C4','D4','E4','F4','G4','A4','B4','C5','D5','E5'];
const durations = ['16n','8n','4n','2n','1n'];
const loop = new Tone.Loop(time => {
  const synth = synths[Math.floor(Math.random() * synths.length)];
  const note = allNotes[Math.floor(Math.random() * allNotes.length)];
  const dur = durations[Math.floor(Math.random() * durations.length)];
  synth.triggerAttackRelease(note, dur, time, Math.random() * 0.7 + 0.3);
}, '8n').start(0);
Tone.Transport.bpm.value = 120 + Math.random() * 60;
Tone.Transport.start();
setTimeout(() => { Tone.Transport.stop(); loop.dispose(); synths.forEach(s => s.dispose()); reverb.dispose(); }, 25000);`,
			CreatedAt: now.Add(-1 * time.Hour),
		},
	}
}

func strPtr(s string) *string {
	return &s
}
