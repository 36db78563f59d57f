package main

// MergeBossData attaches boss and keywarden location records onto journey
// tasks by document key. Unknown or missing references are skipped, never an
// error. Safe to run more than once: the attached pointers are simply
// overwritten.
func MergeBossData(journey *Journey, static *StaticData) {
	if journey == nil || static == nil {
		return
	}
	chapters := []*Chapter{&journey.Chapter2, &journey.Chapter3, &journey.Chapter4}
	for _, ch := range chapters {
		for i := range ch.Tasks {
			task := &ch.Tasks[i]
			if task.Type == "boss_kill" && task.Boss != "" {
				if boss, ok := static.Bosses.StoryBosses[task.Boss]; ok {
					b := boss
					task.BossData = &b
				}
			}
			if task.Type == "keywarden" && task.KeywardenRef != "" {
				if kw, ok := static.Keywardens[task.KeywardenRef]; ok {
					k := kw
					task.KeywardenData = &k
				}
			}
		}
	}
}
