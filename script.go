package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// renderScript builds the client-side bundle. The gear advisory rules and
// stat breakpoints are marshaled from the same tables the Go evaluators
// run on, so server and page can never disagree; the script carries only a
// generic interpreter over that data.
func renderScript(seasonNumber int) (string, error) {
	rules := make(map[string][]AdviceRule, len(slotRuleTables))
	for _, sr := range slotRuleTables {
		rules[sr.Slot] = sr.Rules
	}
	rulesJSON, err := json.Marshal(rules)
	if err != nil {
		return "", fmt.Errorf("marshal gear rules: %w", err)
	}
	slotsJSON, err := json.Marshal(GearSlotOrder)
	if err != nil {
		return "", fmt.Errorf("marshal slot order: %w", err)
	}
	labelsJSON, err := json.Marshal(swapLabels)
	if err != nil {
		return "", fmt.Errorf("marshal swap labels: %w", err)
	}
	statsJSON, err := json.Marshal(TrackedStats)
	if err != nil {
		return "", fmt.Errorf("marshal stat table: %w", err)
	}

	r := strings.NewReplacer(
		"__NAMESPACE__", ProgressNamespace(seasonNumber),
		"__GEAR_RULES__", string(rulesJSON),
		"__SLOT_ORDER__", string(slotsJSON),
		"__SWAP_LABELS__", string(labelsJSON),
		"__STAT_TABLE__", string(statsJSON),
	)
	return r.Replace(clientScript), nil
}

const clientScript = `        // Tab switching
        document.querySelectorAll('.tab').forEach(tab => {
            tab.addEventListener('click', () => {
                document.querySelectorAll('.tab').forEach(t => t.classList.remove('active'));
                document.querySelectorAll('.content').forEach(c => c.classList.remove('active'));
                tab.classList.add('active');
                document.getElementById(tab.dataset.tab).classList.add('active');
            });
        });

        // Checkbox handling
        function updateProgress() {
            const checkboxes = document.querySelectorAll('input[type="checkbox"]');
            const checked = document.querySelectorAll('input[type="checkbox"]:checked').length;
            const total = checkboxes.length;
            const percent = Math.round((checked / total) * 100);
            document.getElementById('progressBar').style.width = percent + '%';
            document.getElementById('progressText').textContent = ` + "`${checked} / ${total} (${percent}%)`" + `;
        }

        function saveState() {
            const state = {};
            document.querySelectorAll('input[type="checkbox"]').forEach(cb => {
                const key = cb.id || (cb.dataset.slot + '_' + cb.dataset.stat);
                if (key) state[key] = cb.checked;
            });
            localStorage.setItem('__NAMESPACE__', JSON.stringify(state));
        }

        function loadState() {
            const state = JSON.parse(localStorage.getItem('__NAMESPACE__') || '{}');
            document.querySelectorAll('input[type="checkbox"]').forEach(cb => {
                const key = cb.id || (cb.dataset.slot + '_' + cb.dataset.stat);
                if (key && state[key] !== undefined) {
                    cb.checked = state[key];
                }
                if (cb.checked) {
                    cb.closest('.item')?.classList.add('checked');
                }
            });
            updateProgress();
            // Update all gear checker advice on load
            slotOrder.forEach(updateGearAdvice);
        }

        document.querySelectorAll('input[type="checkbox"]').forEach(cb => {
            cb.addEventListener('change', () => {
                cb.closest('.item')?.classList.toggle('checked', cb.checked);
                saveState();
                updateProgress();
            });
        });

        function resetAll() {
            if (confirm('Wirklich alles zurücksetzen?')) {
                document.querySelectorAll('input[type="checkbox"]').forEach(cb => {
                    cb.checked = false;
                    cb.closest('.item')?.classList.remove('checked');
                });
                saveState();
                updateProgress();
            }
        }

        // Boss search
        const searchBox = document.getElementById('bossSearch');
        if (searchBox) {
            searchBox.addEventListener('input', (e) => {
                const query = e.target.value.toLowerCase();
                document.querySelectorAll('.boss-card').forEach(card => {
                    const text = card.textContent.toLowerCase();
                    card.classList.toggle('hidden', !text.includes(query));
                });
            });
        }

        // Gear checker: first matching rule wins. Same tables as the
        // generator, embedded as data.
        const gearRules = __GEAR_RULES__;
        const slotOrder = __SLOT_ORDER__;
        const swapLabels = __SWAP_LABELS__;

        function ruleMatches(rule, has) {
            if (rule.missing && rule.missing.some(s => has[s])) return false;
            if (rule.has && !rule.has.every(s => has[s])) return false;
            if (rule.hasAny && !rule.hasAny.some(s => has[s])) return false;
            if (rule.hasGroups && !rule.hasGroups.some(g => g.every(s => has[s]))) return false;
            return true;
        }

        function ruleText(rule, has) {
            if (!rule.swap) return rule.text;
            const present = rule.swap.find(s => has[s]);
            if (!present) return rule.text;
            return rule.text.replace('{stat}', swapLabels[present] || present);
        }

        function updateGearAdvice(slot) {
            const checks = document.querySelectorAll(` + "`[data-slot=\"${slot}\"]`" + `);
            const has = {};
            checks.forEach(cb => { has[cb.dataset.stat] = cb.checked; });

            const adviceEl = document.getElementById(` + "`advice-${slot}`" + `);
            const rules = gearRules[slot];
            if (adviceEl && rules) {
                const rule = rules.find(r => ruleMatches(r, has));
                if (rule) {
                    adviceEl.textContent = ruleText(rule, has);
                    adviceEl.className = 'reroll-advice ' + (rule.tier || '');
                }
            }
        }

        document.querySelectorAll('.gear-checker input[type="checkbox"]').forEach(cb => {
            cb.addEventListener('change', () => {
                updateGearAdvice(cb.dataset.slot);
            });
        });

        // Stat Calculator Logic
        const statTable = __STAT_TABLE__;

        function updateStatCalculator() {
            const recommendations = [];

            statTable.forEach(stat => {
                const input = document.getElementById(` + "`stat-${stat.key}`" + `);
                const fill = document.getElementById(` + "`fill-${stat.key}`" + `);
                const value = document.getElementById(` + "`value-${stat.key}`" + `);
                const bp = stat.bp;

                if (!input || !fill || !value) return;

                const val = parseFloat(input.value) || 0;
                const percent = Math.min(100, (val / bp.max) * 100);

                fill.style.width = percent + '%';

                let status, cls;
                if (val < bp.min) {
                    status = '❌ Niedrig';
                    cls = 'bad';
                    recommendations.push(stat.tipLow);
                } else if (val < bp.good) {
                    status = '⚠️ Okay';
                    cls = 'ok';
                    if (stat.okayNote) {
                        recommendations.push(stat.tipOkay);
                    }
                } else if (val >= bp.perfect) {
                    status = '✅ Perfekt';
                    cls = 'good';
                } else {
                    status = '👍 Gut';
                    cls = 'good';
                }

                fill.className = ` + "`stat-fill ${cls}`" + `;
                value.textContent = val > 0 ? ` + "`${val}${bp.unit} - ${status}`" + ` : '-';

                // Save to localStorage
                localStorage.setItem(` + "`stat_${stat.key}`" + `, val);
            });

            const recEl = document.getElementById('stat-recommendations');
            if (recEl) {
                if (recommendations.length === 0) {
                    recEl.innerHTML = '✅ <strong>Alle Stats sind gut!</strong><br><br>Dein Build ist solide. Fokus jetzt auf:<br>• Ancient Gear farmen<br>• Augments hinzufügen<br>• Paragon leveln';
                    recEl.className = 'info-box all-good';
                } else {
                    recEl.innerHTML = '<strong>🔧 Verbesserungen:</strong><br><br>' + recommendations.map(r => '• ' + r).join('<br><br>');
                    recEl.className = 'info-box has-issues';
                }
            }
        }

        function loadStatCalculator() {
            statTable.forEach(stat => {
                const saved = localStorage.getItem(` + "`stat_${stat.key}`" + `);
                const input = document.getElementById(` + "`stat-${stat.key}`" + `);
                if (saved && input) {
                    input.value = saved;
                }
            });
            updateStatCalculator();
        }

        // Add listeners to stat inputs
        statTable.forEach(stat => {
            const input = document.getElementById(` + "`stat-${stat.key}`" + `);
            if (input) {
                input.addEventListener('input', updateStatCalculator);
            }
        });

        loadStatCalculator();
        loadState();`
